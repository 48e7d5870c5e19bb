package model

import (
	"time"

	"github.com/google/uuid"
)

// Page groups the translatable message keys of one UI screen.
type Page struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageMessage is one translatable UI string, keyed within its page and
// carried in both supported languages.
type PageMessage struct {
	ID        uuid.UUID `json:"id"`
	PageID    uuid.UUID `json:"page_id"`
	Key       string    `json:"key"`
	TextEN    string    `json:"text_en"`
	TextAR    string    `json:"text_ar"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePageRequest is the DTO for registering a new UI page.
type CreatePageRequest struct {
	Name string `json:"name" validate:"required,notblank,max=128"`
}

// UpsertMessageRequest inserts or overwrites the translation texts for a
// message key on a page.
type UpsertMessageRequest struct {
	Key    string `json:"key" validate:"required,notblank,max=128"`
	TextEN string `json:"text_en" validate:"max=2000"`
	TextAR string `json:"text_ar" validate:"max=2000"`
}
