package dto

type AppointmentListDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}
