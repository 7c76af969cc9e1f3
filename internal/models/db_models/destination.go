package db_models

type Destination struct {
	BaseModel
	Name        string
	Village     string
	Description string
	Address     string
	ContactInfo string
	TicketPrice int64 // IDR per person, current price; orders snapshot it
	IsOpen      bool  `gorm:"default:true"`

	Transactions []Transaction `gorm:"foreignKey:DestinationID"`
}
