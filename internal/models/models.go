package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Session struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	UserID    uint   `gorm:"index;not null"  json:"user_id"`
	Token     string `gorm:"unique;not null" json:"token"`
	Role      string `gorm:"not null"        json:"role"`
	CreatedAt int64  `gorm:"not null"        json:"created_at"`
	ExpiresAt int64  `json:"expires_at"` // 0 means the session never expires
	Active    bool   `gorm:"default:true"    json:"active"`
}

type PasswordResetToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	UserID    uint   `gorm:"index;not null"  json:"user_id"`
	Token     string `gorm:"unique;not null" json:"token"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Used      bool   `gorm:"default:false"   json:"used"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Stock       uint    `json:"stock"`
	Category    string  `gorm:"index"                    json:"category"`
	ImageURL    string  `json:"image_url"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey"                                 json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"                 json:"quantity"`
}

type Order struct {
	ID          uint    `gorm:"primaryKey"     json:"id"`
	UserID      uint    `gorm:"index;not null" json:"user_id"`
	TotalAmount float64 `gorm:"not null"       json:"total_amount"`
	Status      string  `gorm:"not null"       json:"status"`
	CreatedAt   int64   `gorm:"not null"       json:"created_at"`
}

type OrderItem struct {
	ID              uint    `gorm:"primaryKey"     json:"id"`
	OrderID         uint    `gorm:"index;not null" json:"order_id"`
	ProductID       uint    `gorm:"not null"       json:"product_id"`
	Quantity        uint    `gorm:"not null"       json:"quantity"`
	PriceAtPurchase float64 `gorm:"not null"       json:"price_at_purchase"`
}
