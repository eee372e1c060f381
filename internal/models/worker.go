package models

// Worker сотрудник шахты. Ядро только читает позиции и никогда их не изменяет
type Worker struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Role   string  `json:"role" yaml:"role"`
	Sector string  `json:"sector" yaml:"sector"`
	Lat    float64 `json:"lat" yaml:"lat"`
	Lng    float64 `json:"lng" yaml:"lng"`
}
