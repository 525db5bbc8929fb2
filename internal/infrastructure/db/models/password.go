package models

import "time"

// SingletonID is the only primary key the singleton tables accept.
const SingletonID = 1

type Password struct {
	ID             int16  `gorm:"primaryKey;autoIncrement:false"`
	HashedPassword string `gorm:"type:text;not null"`
	CreatedAt      time.Time
}

func (Password) TableName() string {
	return "passwords"
}
