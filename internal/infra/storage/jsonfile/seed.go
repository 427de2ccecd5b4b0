package jsonfile

import (
	"time"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
)

// SeedCleanerID id демо-клинера, записываемого в новый файл
const SeedCleanerID = "cleaner-1"

func seedDocument(now time.Time) *document {
	maria := domain.NewCleaner(SeedCleanerID, "Maria Santos", "maria@sparkleclean.com", now)
	maria.Pricing = domain.Pricing{Strategy: domain.FlatTable{
		"1-1": 80, "1-2": 95, "1-3": 110, "1-4": 130, "1-5": 150,
		"2-1": 95, "2-2": 115, "2-3": 135, "2-4": 155, "2-5": 175,
		"3-1": 115, "3-2": 140, "3-3": 160, "3-4": 185, "3-5": 210,
		"4-1": 135, "4-2": 165, "4-3": 190, "4-4": 220, "4-5": 250,
		"5-1": 160, "5-2": 195, "5-3": 225, "5-4": 260, "5-5": 295,
	}}

	return &document{
		Cleaners: []*domain.Cleaner{maria},
		Bookings: []*domain.Booking{},
	}
}
