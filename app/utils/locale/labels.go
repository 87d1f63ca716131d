package locale

// labels holds the fixed interface strings shown next to catalog data.
var labels = map[string]map[Locale]string{
	// spec groups
	"physical":     {EN: "Physical Characteristics", RU: "Физические характеристики", UZ: "Jismoniy xususiyatlari"},
	"mobility":     {EN: "Mobility", RU: "Мобильность", UZ: "Harakatchanlik"},
	"electric":     {EN: "Electrical Characteristics", RU: "Электрические характеристики", UZ: "Elektr xususiyatlari"},
	"connectivity": {EN: "Connectivity", RU: "Связь", UZ: "Ulanish"},
	"hardware":     {EN: "Hardware Features", RU: "Аппаратные особенности", UZ: "Apparat xususiyatlari"},
	"functions":    {EN: "Functions", RU: "Функции", UZ: "Funksiyalar"},

	// spec items
	"dimensions":       {EN: "Dimensions (standing)", RU: "Размеры (стоя)", UZ: "O'lchamlari (tik holatda)"},
	"protection":       {EN: "Protection class", RU: "Класс защиты", UZ: "Himoya darajasi"},
	"weight":           {EN: "Weight (with battery)", RU: "Вес (с аккумулятором)", UZ: "Og'irligi (batareya bilan)"},
	"speed":            {EN: "Max Speed", RU: "Максимальная скорость", UZ: "Eng yuqori tezlik"},
	"lifting":          {EN: "Max Load Capacity", RU: "Грузоподъемность (макс.)", UZ: "Yuk ko'tarish (maksimal)"},
	"battery_capacity": {EN: "Battery Capacity", RU: "Ёмкость аккумулятора", UZ: "Batareya sig'imi"},
	"battery_life":     {EN: "Battery Life", RU: "Время работы", UZ: "Ishlash vaqti"},
	"wifi":             {EN: "Wi-Fi", RU: "Wi-Fi", UZ: "Wi-Fi"},
	"bluetooth":        {EN: "Bluetooth", RU: "Bluetooth", UZ: "Bluetooth"},
	"processor":        {EN: "Processor", RU: "Процессор", UZ: "Protsessor"},
	"sensors":          {EN: "Cameras & Sensors", RU: "Камеры и сенсоры", UZ: "Kameralar va sensorlar"},
	"camera_specs":     {EN: "Camera Specifications", RU: "Спецификации камеры", UZ: "Kamera spetsifikatsiyasi"},
	"voice":            {EN: "Voice Recognition", RU: "Распознавание голоса", UZ: "Ovozni aniqlash"},
	"light":            {EN: "Front Light", RU: "Передний фонарь", UZ: "Old chiroq"},
	"strap":            {EN: "Carrying Strap", RU: "Ремень для переноски", UZ: "Ko'tarish uchun tasma"},

	// short spec list
	"short_speed":    {EN: "Maximum speed", RU: "Максимальная скорость", UZ: "Maksimal tezlik"},
	"short_capacity": {EN: "Carrying capacity", RU: "Грузоподъёмность", UZ: "Yuk ko'tarish qobiliyati"},
	"short_wireless": {EN: "Wireless module", RU: "Беспроводной модуль", UZ: "Simsiz aloqa moduli"},
	"short_autonomy": {EN: "Autonomous work", RU: "Автономная работа", UZ: "Avtonom ish vaqti"},

	// units
	"unit_speed": {EN: "km/h", RU: "км/ч", UZ: "km/soat"},
	"unit_mass":  {EN: "kg", RU: "кг", UZ: "kg"},
	"unit_hours": {EN: "h", RU: "ч", UZ: "soat"},

	"yes": {EN: "Yes", RU: "Да", UZ: "Ha"},
	"no":  {EN: "No", RU: "Нет", UZ: "Yo'q"},

	// product detail blocks
	"purchase_additionally": {EN: "Purchase additionally:", RU: "Купить дополнительно:", UZ: "Qo'shimcha xarid qilish:"},
	"advantages_of":         {EN: "Advantages of %s", RU: "Преимущества %s", UZ: "%s afzalliklari"},
	"hero_subtitle":         {EN: "Bionic robot in basic configuration", RU: "Бионический робот в базовой комплектации", UZ: "Asosiy konfiguratsiyadagi bionik robot"},
	"hero_price_rent":       {EN: "Available for rent", RU: "Доступен для аренды", UZ: "Ijaraga olish mumkin"},
	"hero_cta":              {EN: "Make an order", RU: "Сделать заказ", UZ: "Buyurtma berish"},
	"available_for_sale":    {EN: "Available for sale", RU: "Доступен для продажи", UZ: "Sotuvga mavjud"},

	// about us
	"services_title":    {EN: "Services", RU: "Услуги", UZ: "Xizmatlar"},
	"services_subtitle": {EN: "We provide our clients with a full range of services for the implementation, configuration, and effective use of robotics.", RU: "Мы предоставляем полный спектр услуг по внедрению, настройке и эффективному использованию робототехники.", UZ: "Biz mijozlarga robototexnikadan samarali foydalanish, sozlash va joriy etish uchun to'liq xizmatlar ko'lamini taqdim etamiz."},
}

// T returns the label for key in l, falling back to English and then to the
// key itself.
func T(l Locale, key string) string {
	entry, ok := labels[key]
	if !ok {
		return key
	}
	if v, ok := entry[l]; ok && v != "" {
		return v
	}
	if v, ok := entry[Default]; ok {
		return v
	}
	return key
}
