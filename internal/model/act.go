package model

import "time"

// HumanAct 人類表演節目
type HumanAct struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Type            string    `json:"type" db:"type"`
	PerformanceID   int64     `json:"performance_id" db:"performance_id"`
	MainPerformerID int64     `json:"main_performer_id" db:"main_performer_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// AnimalAct 動物表演節目
type AnimalAct struct {
	ID            int64     `json:"id" db:"id"`
	PerformanceID int64     `json:"performance_id" db:"performance_id"`
	AnimalID      int64     `json:"animal_id" db:"animal_id"`
	TrainerID     int64     `json:"trainer_id" db:"trainer_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
