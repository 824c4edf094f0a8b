package models

import "time"

// Ride represents a ride published by a driver. The record identity is
// assigned by the tabular backend; rides are soft-deleted via the Cancelled
// flag and never mutated otherwise.
type Ride struct {
	ID         string    `json:"id"`
	DriverName string    `json:"driver_name"`
	FromCity   string    `json:"from_city"`
	FromArea   string    `json:"from_area,omitempty"`
	ToCity     string    `json:"to_city"`
	ToArea     string    `json:"to_area,omitempty"`
	Date       string    `json:"date"` // calendar date, no time zone
	Time       string    `json:"time"` // hour granularity
	Seats      int       `json:"seats"`
	Price      string    `json:"price"` // non-negative numeric string, per seat
	WhatsApp   string    `json:"whatsapp"`
	CarType    string    `json:"car_type,omitempty"`
	Note       string    `json:"note,omitempty"`
	Cancelled  bool      `json:"cancelled"`
	CreatedAt  time.Time `json:"created_at"`
}

// RideRequest represents a ride published by a passenger looking for a driver.
// Same lifecycle shape as Ride.
type RideRequest struct {
	ID            string    `json:"id"`
	PassengerName string    `json:"passenger_name"`
	FromCity      string    `json:"from_city"`
	FromArea      string    `json:"from_area,omitempty"`
	ToCity        string    `json:"to_city"`
	ToArea        string    `json:"to_area,omitempty"`
	Date          string    `json:"date"`
	Seats         int       `json:"seats"` // seats needed, at least 1
	WhatsApp      string    `json:"whatsapp"`
	Note          string    `json:"note,omitempty"`
	Cancelled     bool      `json:"cancelled"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublishRideInput is the payload for publishing a new ride
type PublishRideInput struct {
	DriverName string `json:"driver_name"`
	FromCity   string `json:"from_city"`
	FromArea   string `json:"from_area"`
	ToCity     string `json:"to_city"`
	ToArea     string `json:"to_area"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Seats      int    `json:"seats"`
	Price      string `json:"price"`
	WhatsApp   string `json:"whatsapp"`
	CarType    string `json:"car_type"`
	Note       string `json:"note"`
}

// PublishRequestInput is the payload for publishing a new ride request
type PublishRequestInput struct {
	PassengerName string `json:"passenger_name"`
	FromCity      string `json:"from_city"`
	FromArea      string `json:"from_area"`
	ToCity        string `json:"to_city"`
	ToArea        string `json:"to_area"`
	Date          string `json:"date"`
	Seats         int    `json:"seats"`
	WhatsApp      string `json:"whatsapp"`
	Note          string `json:"note"`
}
