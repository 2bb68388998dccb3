package members

import (
	models "Chatline/models/postgres"
	"errors"

	"gorm.io/gorm"
)

// ErrMemberNotFound is returned by FindByID when no member has the id.
var ErrMemberNotFound = errors.New("member not found")

// Directory is the member lookup surface the rest of the system consumes.
// The chat subsystem treats the member table as an external collaborator and
// only ever reads through these two queries.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// FindByID returns the member with the given id or ErrMemberNotFound.
func (d *Directory) FindByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := d.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// FindByEmail returns the member with the given email, or nil when no such
// member exists (absence is not an error on this path, login uses it to
// reject unknown accounts).
func (d *Directory) FindByEmail(email string) (*models.Member, error) {
	var member models.Member
	err := d.db.Where("email = ?", email).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}
