package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "moveit/internal/errors"
	"moveit/internal/model"
)

func TestCarService_CreateCar_RejectsNonPositivePrice(t *testing.T) {
	mockRepo := new(MockCarRepository)
	service := NewCarService(mockRepo, nil)

	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := service.CreateCar(context.Background(), &model.Car{
			Name:        "Corolla",
			PricePerDay: price,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCarService_GetCar_NotFound(t *testing.T) {
	carID := uuid.New()
	mockRepo := new(MockCarRepository)
	mockRepo.On("FindByID", mock.Anything, carID).Return(nil, gorm.ErrRecordNotFound)

	service := NewCarService(mockRepo, nil)

	_, err := service.GetCar(context.Background(), carID)
	assert.ErrorIs(t, err, apperrors.ErrCarNotFound)
}

func TestCarService_UpdateCar_PartialFields(t *testing.T) {
	carID := uuid.New()
	mockRepo := new(MockCarRepository)
	mockRepo.On("FindByID", mock.Anything, carID).Return(&model.Car{
		ID:                carID,
		Name:              "Corolla",
		PlateNumber:       "KDA 001A",
		Status:            model.CarStatusAvailable,
		PricePerDay:       decimal.NewFromInt(45),
		PassengerCapacity: 5,
	}, nil)

	var saved *model.Car
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Car")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*model.Car) }).
		Return(nil)

	service := NewCarService(mockRepo, nil)

	status := model.CarStatusRented
	car, err := service.UpdateCar(context.Background(), carID, CarUpdate{Status: &status})
	assert.NoError(t, err)
	assert.NotNil(t, car)

	assert.Equal(t, model.CarStatusRented, saved.Status)
	assert.Equal(t, "Corolla", saved.Name)
	assert.True(t, saved.PricePerDay.Equal(decimal.NewFromInt(45)))
}
