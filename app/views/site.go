package views

import "github.com/hitechrobotics/catalog-api/app/models"

type DepthHero struct {
	Title           string  `json:"title"`
	BackgroundImage *string `json:"backgroundImage"`
}

type TitleDesc struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type Stat struct {
	Value string `json:"value"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type FeatureList struct {
	Features []TitleDesc `json:"features"`
}

type ServiceList struct {
	Services []TitleDesc `json:"services"`
}

type Counts struct {
	Stats []Stat `json:"stats"`
}

type ServicesBlock struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Services []TitleDesc `json:"services"`
}

type AboutUs struct {
	Title            string        `json:"title"`
	Subtitle         string        `json:"subtitle"`
	MainParagraph    string        `json:"mainParagraph"`
	ImageSrc         *string       `json:"imageSrc"`
	SectionTitle     string        `json:"sectionTitle"`
	SectionSubtitle  string        `json:"sectionSubtitle"`
	Features         []string      `json:"features"`
	Conclusion       string        `json:"conclusion"`
	FeatureList      FeatureList   `json:"featureList"`
	FeaturedServices ServiceList   `json:"featuredServices"`
	Counts           Counts        `json:"counts"`
	Services         ServicesBlock `json:"services"`
}

type AboutPage struct {
	DepthHero DepthHero `json:"depthHero"`
	AboutUs   AboutUs   `json:"aboutUs"`
}

func About(c Context, a *models.AboutCompany) AboutPage {
	page := AboutPage{
		DepthHero: DepthHero{
			Title:           c.T(a.DepthHeroTitle),
			BackgroundImage: c.MediaPtr(a.DepthHeroImage),
		},
		AboutUs: AboutUs{
			Title:            c.T(a.Title),
			Subtitle:         c.T(a.Subtitle),
			MainParagraph:    c.T(a.MainParagraph),
			ImageSrc:         c.MediaPtr(a.Image),
			SectionTitle:     c.T(a.SectionTitle),
			SectionSubtitle:  c.T(a.SectionSubtitle),
			Features:         make([]string, 0, len(a.Features)),
			Conclusion:       c.T(a.Conclusion),
			FeatureList:      FeatureList{Features: make([]TitleDesc, 0, len(a.FeatureList))},
			FeaturedServices: ServiceList{Services: make([]TitleDesc, 0, len(a.FeaturedServices))},
			Counts:           Counts{Stats: make([]Stat, 0, len(a.CountStats))},
			Services: ServicesBlock{
				Title:    c.Label("services_title"),
				Subtitle: c.Label("services_subtitle"),
				Services: make([]TitleDesc, 0, len(a.Services)),
			},
		},
	}

	us := &page.AboutUs
	for _, f := range a.Features {
		us.Features = append(us.Features, c.T(f.Text))
	}
	for _, f := range a.FeatureList {
		us.FeatureList.Features = append(us.FeatureList.Features, TitleDesc{Title: c.T(f.Title), Desc: c.T(f.Desc)})
	}
	for _, s := range a.FeaturedServices {
		us.FeaturedServices.Services = append(us.FeaturedServices.Services, TitleDesc{Title: c.T(s.Title), Desc: c.T(s.Desc)})
	}
	for _, s := range a.CountStats {
		us.Counts.Stats = append(us.Counts.Stats, Stat{Value: s.Value, Title: c.T(s.Title), Desc: c.T(s.Desc)})
	}
	for _, s := range a.Services {
		us.Services.Services = append(us.Services.Services, TitleDesc{Title: c.T(s.Title), Desc: c.T(s.Desc)})
	}
	return page
}

type Location struct {
	City    string  `json:"city"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	MapSrc  string  `json:"map_src"`
}

type Contact struct {
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle"`
	MapSrc    string     `json:"mapSrc"`
	Locations []Location `json:"locations"`
}

type ContactPage struct {
	Contact Contact `json:"contact"`
}

func ContactInfo(c Context, info *models.ContactInfo) ContactPage {
	contact := Contact{
		Title:     c.T(info.Title),
		Subtitle:  c.T(info.Subtitle),
		MapSrc:    info.MapSrc,
		Locations: make([]Location, 0, len(info.Locations)),
	}
	for _, l := range info.Locations {
		contact.Locations = append(contact.Locations, Location{
			City:    l.City,
			Address: l.Address,
			Lat:     l.Lat,
			Lon:     l.Lon,
			MapSrc:  l.MapSrc,
		})
	}
	return ContactPage{Contact: contact}
}

type MobileHero struct {
	ImageSrc *string `json:"imageSrc"`
	ImageAlt string  `json:"imageAlt"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	CtaText  string  `json:"ctaText"`
}

func RoboticsHero(c Context, h *models.RoboticsHero) MobileHero {
	return MobileHero{
		ImageSrc: c.MediaPtr(h.Image),
		ImageAlt: h.ImageAlt,
		Title:    c.T(h.Title),
		Subtitle: c.T(h.Subtitle),
		CtaText:  c.T(h.CtaText),
	}
}

type ModelURL struct {
	ModelURL string `json:"modelUrl"`
}

func RobotModel(c Context, m *models.RobotModel3D) ModelURL {
	return ModelURL{ModelURL: c.Media(m.GlbFile)}
}
