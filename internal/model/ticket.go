package model

import "time"

// Ticket 票券訂單：一位顧客對一場演出的購買紀錄
type Ticket struct {
	ID            int64     `json:"id" db:"id"`
	PerformanceID int64     `json:"performance_id" db:"performance_id"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	ViewersCount  int       `json:"viewers_count" db:"viewers_count"`
	TotalPrice    int64     `json:"total_price" db:"total_price"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
