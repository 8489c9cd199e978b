package model

import (
	"time"

	"github.com/sinaridesa/sinari-api/type/shared"
)

// Certificate is an issued, uniquely-hashed credential tied to an event and a
// holder name. The event reference is weak: deleting an event never cascades
// into certificates.
type Certificate struct {
	ID              int32     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	CertificateCode string    `gorm:"column:certificate_code;uniqueIndex;not null" json:"certificate_code"`
	Hash            string    `gorm:"uniqueIndex;not null" json:"hash"`
	EventID         int32     `gorm:"column:event_id" json:"eventId"`
	Event           *Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	IssuedAt        time.Time `gorm:"column:issued_at" json:"issued_at"`
	Revoked         bool      `gorm:"not null;default:false" json:"revoked"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Event struct {
	ID           int32     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description  *string   `json:"description"`
	Date         time.Time `gorm:"not null" json:"date"`
	Location     string    `gorm:"not null" json:"location"`
	Participants int32     `gorm:"not null" json:"participants"`
	Thumbnail    string    `gorm:"not null" json:"thumbnail"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Course struct {
	ID          int32     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Uploader    string    `gorm:"not null" json:"uploader"`
	Description *string   `json:"description"`
	AuthorID    int32     `gorm:"column:author_id;not null" json:"authorId"`
	Author      *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	FilePath    *string   `gorm:"column:file_path" json:"filePath"`
	Thumbnail   *string   `json:"thumbnail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Team struct {
	ID        int32           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	Position  shared.Position `gorm:"not null" json:"position"`
	Picture   *string         `json:"picture"`
	Skills    []*Skill        `gorm:"many2many:team_skills" json:"skills,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type Skill struct {
	ID   int32  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type User struct {
	ID        int32       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string      `gorm:"uniqueIndex;not null" json:"email"`
	Name      string      `json:"name"`
	Password  string      `gorm:"not null" json:"-"`
	Role      shared.Role `gorm:"not null;default:USER" json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
