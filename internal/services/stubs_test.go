package services

import (
	"time"

	"github.com/lunara-app/lunara/internal/models"
)

type cycleRepositoryStub struct {
	cycles    map[uint]models.Cycle
	nextID    uint
	saveErr   error
	deleteErr error
}

func newCycleRepositoryStub() *cycleRepositoryStub {
	return &cycleRepositoryStub{
		cycles: make(map[uint]models.Cycle),
		nextID: 1,
	}
}

func (stub *cycleRepositoryStub) Save(cycle *models.Cycle) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	if cycle.ID == 0 {
		cycle.ID = stub.nextID
		stub.nextID++
	}
	stub.cycles[cycle.ID] = *cycle
	return nil
}

func (stub *cycleRepositoryStub) SaveAll(cycles []*models.Cycle) error {
	for _, cycle := range cycles {
		if err := stub.Save(cycle); err != nil {
			return err
		}
	}
	return nil
}

func (stub *cycleRepositoryStub) FindByID(id uint) (models.Cycle, bool, error) {
	cycle, ok := stub.cycles[id]
	return cycle, ok, nil
}

func (stub *cycleRepositoryStub) FindByUser(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	for _, cycle := range stub.cycles {
		if cycle.UserID == userID {
			cycles = append(cycles, cycle)
		}
	}
	return cycles, nil
}

func (stub *cycleRepositoryStub) FindMostRecentByUser(userID uint) (models.Cycle, bool, error) {
	mostRecent := models.Cycle{}
	found := false
	for _, cycle := range stub.cycles {
		if cycle.UserID != userID {
			continue
		}
		if !found ||
			cycle.StartDate.After(mostRecent.StartDate) ||
			(cycle.StartDate.Equal(mostRecent.StartDate) && cycle.ID > mostRecent.ID) {
			mostRecent = cycle
			found = true
		}
	}
	return mostRecent, found, nil
}

func (stub *cycleRepositoryStub) FindPredictedByUser(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	for _, cycle := range stub.cycles {
		if cycle.UserID == userID && cycle.IsPredicted {
			cycles = append(cycles, cycle)
		}
	}
	return cycles, nil
}

func (stub *cycleRepositoryStub) ExistsByID(id uint) (bool, error) {
	_, ok := stub.cycles[id]
	return ok, nil
}

func (stub *cycleRepositoryStub) DeleteByID(id uint) error {
	if stub.deleteErr != nil {
		return stub.deleteErr
	}
	delete(stub.cycles, id)
	return nil
}

func (stub *cycleRepositoryStub) DeleteAll(cycles []models.Cycle) error {
	if stub.deleteErr != nil {
		return stub.deleteErr
	}
	for _, cycle := range cycles {
		delete(stub.cycles, cycle.ID)
	}
	return nil
}

func (stub *cycleRepositoryStub) predictedCount(userID uint) int {
	count := 0
	for _, cycle := range stub.cycles {
		if cycle.UserID == userID && cycle.IsPredicted {
			count++
		}
	}
	return count
}

type dailyLogRepositoryStub struct {
	entries   map[uint]models.DailyLog
	nextID    uint
	createErr error
	saveErr   error
}

func newDailyLogRepositoryStub() *dailyLogRepositoryStub {
	return &dailyLogRepositoryStub{
		entries: make(map[uint]models.DailyLog),
		nextID:  1,
	}
}

func (stub *dailyLogRepositoryStub) FindByID(id uint) (models.DailyLog, bool, error) {
	entry, ok := stub.entries[id]
	return entry, ok, nil
}

func (stub *dailyLogRepositoryStub) FindByUserAndDate(userID uint, day time.Time) (models.DailyLog, bool, error) {
	for _, entry := range stub.entries {
		if entry.UserID == userID && entry.Date.Equal(day) {
			return entry, true, nil
		}
	}
	return models.DailyLog{}, false, nil
}

func (stub *dailyLogRepositoryStub) ListByUser(userID uint) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	for _, entry := range stub.entries {
		if entry.UserID == userID {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

func (stub *dailyLogRepositoryStub) Create(entry *models.DailyLog) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	entry.ID = stub.nextID
	stub.nextID++
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *dailyLogRepositoryStub) Save(entry *models.DailyLog) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *dailyLogRepositoryStub) DeleteByID(id uint) error {
	delete(stub.entries, id)
	return nil
}

func (stub *dailyLogRepositoryStub) addLog(userID uint, date string, hasMenstruation bool) {
	entry := models.DailyLog{
		UserID:          userID,
		Date:            mustParseDay(date),
		HasMenstruation: hasMenstruation,
		MenstrualFlow:   models.FlowNone,
	}
	entry.ID = stub.nextID
	stub.nextID++
	stub.entries[entry.ID] = entry
}

func mustParseDay(raw string) time.Time {
	parsed, err := ParseDay(raw)
	if err != nil {
		panic(err)
	}
	return parsed
}
