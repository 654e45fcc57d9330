package main

import (
	"context"
	"errors"
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/app/drivers/database"
	"healthportal-service/internal/app/drivers/logger"
	"healthportal-service/internal/app/services/core/doctors"
	"healthportal-service/internal/app/services/core/users"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"
	"time"

	"github.com/sirupsen/logrus"
)

// Version sets the default build version
var Version = "develop"

// seeder loads the demo accounts and the doctor catalog into MongoDB.
// Running it twice leaves existing documents untouched.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	if !driverConfig.MongoDB.Enabled() {
		log.Fatal("MongoDB is not configured, nothing to seed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := database.NewMongoDB(ctx, driverConfig)
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()

	userRepository := users.NewUserMongoRepository(db).(*users.UserMongoRepository)
	if err := userRepository.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Fatal("Failed to create user indexes")
	}

	insertedUsers := 0
	for _, user := range users.MockUsers() {
		err := userRepository.Insert(ctx, &user)
		if isAlreadyExists(err) {
			log.WithField("email", user.Email).Debug("User already seeded")
			continue
		}
		if err != nil {
			log.WithError(err).WithField("email", user.Email).Fatal("Failed to seed user")
		}
		insertedUsers++
	}

	doctorRepository := doctors.NewDoctorMongoRepository(db)
	insertedDoctors := 0
	for _, doctor := range doctors.Catalog() {
		existing, err := doctorRepository.FindByID(ctx, doctor.ID)
		if err != nil {
			log.WithError(err).WithField("doctor_id", doctor.ID).Fatal("Failed to look up doctor")
		}
		if existing != nil {
			continue
		}
		if err := doctorRepository.Insert(ctx, &doctor); err != nil {
			log.WithError(err).WithField("doctor_id", doctor.ID).Fatal("Failed to seed doctor")
		}
		insertedDoctors++
	}

	log.WithFields(logrus.Fields{
		"version":          Version,
		"users_inserted":   insertedUsers,
		"doctors_inserted": insertedDoctors,
	}).Info("Seeding finished")
}

func isAlreadyExists(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.Code == constvars.ErrCodeUserAlreadyExists
}
