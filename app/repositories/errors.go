package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrSlugTaken is returned by Create when another row already holds the slug.
var ErrSlugTaken = errors.New("slug already taken")

func translateCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}
