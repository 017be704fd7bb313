package domain

import "time"

// Review is customer feedback attached to a product. Reviews are immutable.
type Review struct {
	ID       string    `yaml:"id" json:"id"`
	UserID   string    `yaml:"user_id" json:"userId"`
	UserName string    `yaml:"user_name" json:"userName"`
	Rating   float64   `yaml:"rating" json:"rating"`
	Comment  string    `yaml:"comment" json:"comment"`
	Date     time.Time `yaml:"date" json:"date"`
}
