package model

type User struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Username string `gorm:"column:username;type:varchar(50);not null;unique" json:"username"`

	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}
