package models

import "time"

type Task struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"-" db:"user_id"`
	Text      string    `json:"texto" db:"texto"`
	Completed bool      `json:"completada" db:"completada"`
	CreatedAt time.Time `json:"creadaEn" db:"creada_en"`
}
