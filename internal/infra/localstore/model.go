package localstore

import (
	"time"

	"agriconnect/internal/domain/entity"
)

// Wire models for the JSON store. Field names match the document format the
// mobile clients already sync against, so the file stays interchangeable.

type coordsModel struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type userModel struct {
	ID                    string       `json:"id"`
	Name                  string       `json:"name"`
	Phone                 string       `json:"phone"`
	Location              string       `json:"location,omitempty"`
	Role                  string       `json:"role,omitempty"`
	Verified              bool         `json:"verified"`
	VerificationRequested bool         `json:"verificationRequested"`
	BankAccount           string       `json:"bankAccount,omitempty"`
	IFSC                  string       `json:"ifsc,omitempty"`
	Coords                *coordsModel `json:"coords,omitempty"`
	EnrolledBy            string       `json:"enrolledBy,omitempty"`
	PasswordHash          string       `json:"passwordHash,omitempty"`
	CreatedAt             time.Time    `json:"createdAt"`
	UpdatedAt             time.Time    `json:"updatedAt"`
}

type cropModel struct {
	ID                    string    `json:"id"`
	FarmerID              string    `json:"farmerId"`
	FarmerName            string    `json:"farmerName"`
	FarmerPhone           string    `json:"farmerPhone"`
	FarmerLocation        string    `json:"farmerLocation"`
	Name                  string    `json:"name"`
	Price                 int64     `json:"price"`
	Quantity              int64     `json:"quantity"`
	Unit                  string    `json:"unit"`
	Description           string    `json:"description,omitempty"`
	Category              string    `json:"category,omitempty"`
	Image                 string    `json:"image,omitempty"`
	Verified              bool      `json:"verified"`
	VerificationRequested bool      `json:"verificationRequested"`
	IsSold                bool      `json:"isSold"`
	ListedBy              string    `json:"listedBy,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

type transactionModel struct {
	ID               string    `json:"id"`
	BuyerID          string    `json:"buyerId"`
	SellerID         string    `json:"sellerId"`
	CropID           string    `json:"cropId"`
	Amount           int64     `json:"amount"`
	Status           string    `json:"status"`
	DeliveryMode     string    `json:"deliveryMode"`
	TrackingInfo     string    `json:"trackingInfo,omitempty"`
	DeliveryAddress  string    `json:"deliveryAddress,omitempty"`
	EstimatedArrival time.Time `json:"estimatedArrival"`
	CreatedAt        time.Time `json:"createdAt"`
}

func userToModel(user *entity.User) *userModel {
	model := &userModel{
		ID:                    user.ID,
		Name:                  user.Name,
		Phone:                 user.Phone,
		Location:              user.Location,
		Role:                  string(user.Role),
		Verified:              user.Verified,
		VerificationRequested: user.VerificationRequested,
		BankAccount:           user.BankAccount,
		IFSC:                  user.IFSC,
		EnrolledBy:            user.EnrolledBy,
		PasswordHash:          user.PasswordHash,
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
	}
	if user.Coords != nil {
		model.Coords = &coordsModel{Lat: user.Coords.Lat, Lng: user.Coords.Lng}
	}

	return model
}

func (m *userModel) toEntity() *entity.User {
	user := &entity.User{
		ID:                    m.ID,
		Name:                  m.Name,
		Phone:                 m.Phone,
		Location:              m.Location,
		Role:                  entity.Role(m.Role),
		Verified:              m.Verified,
		VerificationRequested: m.VerificationRequested,
		BankAccount:           m.BankAccount,
		IFSC:                  m.IFSC,
		EnrolledBy:            m.EnrolledBy,
		PasswordHash:          m.PasswordHash,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	if m.Coords != nil {
		user.Coords = &entity.Coordinates{Lat: m.Coords.Lat, Lng: m.Coords.Lng}
	}

	return user
}

func cropToModel(crop *entity.Crop) *cropModel {
	return &cropModel{
		ID:                    crop.ID,
		FarmerID:              crop.FarmerID,
		FarmerName:            crop.FarmerName,
		FarmerPhone:           crop.FarmerPhone,
		FarmerLocation:        crop.FarmerLocation,
		Name:                  crop.Name,
		Price:                 crop.Price,
		Quantity:              crop.Quantity,
		Unit:                  crop.Unit,
		Description:           crop.Description,
		Category:              crop.Category,
		Image:                 crop.Image,
		Verified:              crop.Verified,
		VerificationRequested: crop.VerificationRequested,
		IsSold:                crop.IsSold,
		ListedBy:              crop.ListedBy,
		CreatedAt:             crop.CreatedAt,
	}
}

func (m *cropModel) toEntity() *entity.Crop {
	return &entity.Crop{
		ID:                    m.ID,
		FarmerID:              m.FarmerID,
		FarmerName:            m.FarmerName,
		FarmerPhone:           m.FarmerPhone,
		FarmerLocation:        m.FarmerLocation,
		Name:                  m.Name,
		Price:                 m.Price,
		Quantity:              m.Quantity,
		Unit:                  m.Unit,
		Description:           m.Description,
		Category:              m.Category,
		Image:                 m.Image,
		Verified:              m.Verified,
		VerificationRequested: m.VerificationRequested,
		IsSold:                m.IsSold,
		ListedBy:              m.ListedBy,
		CreatedAt:             m.CreatedAt,
	}
}

func transactionToModel(tx *entity.Transaction) *transactionModel {
	return &transactionModel{
		ID:               tx.ID,
		BuyerID:          tx.BuyerID,
		SellerID:         tx.SellerID,
		CropID:           tx.CropID,
		Amount:           tx.Amount,
		Status:           string(tx.Status),
		DeliveryMode:     string(tx.DeliveryMode),
		TrackingInfo:     tx.TrackingInfo,
		DeliveryAddress:  tx.DeliveryAddress,
		EstimatedArrival: tx.EstimatedArrival,
		CreatedAt:        tx.CreatedAt,
	}
}

func (m *transactionModel) toEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:               m.ID,
		BuyerID:          m.BuyerID,
		SellerID:         m.SellerID,
		CropID:           m.CropID,
		Amount:           m.Amount,
		Status:           entity.TransactionStatus(m.Status),
		DeliveryMode:     entity.DeliveryMode(m.DeliveryMode),
		TrackingInfo:     m.TrackingInfo,
		DeliveryAddress:  m.DeliveryAddress,
		EstimatedArrival: m.EstimatedArrival,
		CreatedAt:        m.CreatedAt,
	}
}
