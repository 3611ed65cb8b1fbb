package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/doworks-png/road-monitor/internal/models"
	"github.com/doworks-png/road-monitor/internal/store"
)

// Seeds a PostgreSQL database with the reference catalogs and a set of
// sample projects. Reference rows are upserted by their natural keys,
// so re-running is safe; sample projects are only created on an empty
// projects table.

const defaultPassword = "admin123"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL must be set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := store.Migrate(db); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	if err := run(db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	logger.Info("seeding completed")
}

func run(db *gorm.DB, logger *zap.Logger) error {
	provinces, err := seedProvinces(db)
	if err != nil {
		return err
	}
	logger.Info("provinces seeded", zap.Int("count", len(provinces)))

	if err := seedWorkTypes(db); err != nil {
		return err
	}
	logger.Info("work types seeded")

	users, err := seedUsers(db)
	if err != nil {
		return err
	}
	logger.Info("users seeded", zap.Int("count", len(users)))

	contractors, err := seedContractors(db)
	if err != nil {
		return err
	}
	logger.Info("contractors seeded", zap.Int("count", len(contractors)))

	var projectCount int64
	if err := db.Model(&models.Project{}).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount > 0 {
		logger.Info("projects already present, skipping sample data", zap.Int64("count", projectCount))
		return nil
	}

	projects, err := seedProjects(db, provinces, users)
	if err != nil {
		return err
	}
	logger.Info("sample projects created", zap.Int("count", len(projects)))

	if err := seedGPSEntries(db, projects, users); err != nil {
		return err
	}
	logger.Info("gps entries created")

	if err := seedFinancialEntries(db, projects, users, contractors); err != nil {
		return err
	}
	logger.Info("financial entries created")

	return nil
}

func seedProvinces(db *gorm.DB) (map[string]models.Province, error) {
	byCode := make(map[string]models.Province)
	for _, p := range store.AllProvinces() {
		p.ID = uuid.New().String()
		var record models.Province
		if err := db.Where(models.Province{Code: p.Code}).
			Attrs(p).FirstOrCreate(&record).Error; err != nil {
			return nil, err
		}
		byCode[record.Code] = record
	}
	return byCode, nil
}

func seedWorkTypes(db *gorm.DB) error {
	for _, wt := range store.WorkTypeCatalog() {
		wt.ID = uuid.New().String()
		var record models.WorkType
		if err := db.Where(models.WorkType{Name: wt.Name}).
			Attrs(wt).FirstOrCreate(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) (map[string]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	fixtures := []models.User{
		{Email: "admin@png.gov.pg", Name: "System Administrator", Role: models.RoleAdmin},
		{Email: "michael.kila@works.png.gov.pg", Name: "Michael Kila", Role: models.RoleProjectManager},
		{Email: "james.peter@works.png.gov.pg", Name: "James Peter", Role: models.RoleSiteEngineer},
		{Email: "mary.thomas@works.png.gov.pg", Name: "Mary Thomas", Role: models.RoleFinancialOfficer},
		{Email: "david.namaliu@works.png.gov.pg", Name: "David Namaliu", Role: models.RoleProjectManager},
	}

	byName := make(map[string]models.User)
	for _, u := range fixtures {
		u.ID = uuid.New().String()
		u.Password = string(hash)
		u.IsActive = true
		var record models.User
		if err := db.Where(models.User{Email: u.Email}).
			Attrs(u).FirstOrCreate(&record).Error; err != nil {
			return nil, err
		}
		byName[record.Name] = record
	}
	return byName, nil
}

func seedContractors(db *gorm.DB) ([]models.Contractor, error) {
	var records []models.Contractor
	for _, c := range store.ContractorCatalog() {
		c.ID = uuid.New().String()
		var record models.Contractor
		if err := db.Where(models.Contractor{Name: c.Name}).
			Attrs(c).FirstOrCreate(&record).Error; err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedProjects(db *gorm.DB, provinces map[string]models.Province, users map[string]models.User) ([]models.Project, error) {
	projects := []models.Project{
		{
			Name:        "Highlands Highway Rehabilitation Project",
			Description: "Major rehabilitation of the Highlands Highway connecting Mount Hagen to Port Moresby, including bridge upgrades and safety improvements",
			Location:    "Mount Hagen to Lae Highway (450km)",
			ProvinceID:  provinces["WHP"].ID, Status: models.ProjectStatusActive, Progress: 65,
			Budget: 125000000, Spent: 81250000,
			StartDate: date(2023, 3, 15), EndDate: date(2025, 12, 31),
			Contractor: "Mount Hagen Builders", ManagerID: users["Michael Kila"].ID,
			FundingSource: models.FundingWorldBank,
		},
		{
			Name:        "Port Moresby Ring Road Development",
			Description: "Construction of new ring road around Port Moresby to reduce traffic congestion and improve urban mobility",
			Location:    "Port Moresby Metropolitan Area",
			ProvinceID:  provinces["NCD"].ID, Status: models.ProjectStatusActive, Progress: 45,
			Budget: 89000000, Spent: 40050000,
			StartDate: date(2024, 1, 10), EndDate: date(2026, 6, 30),
			Contractor: "Port Moresby Engineering", ManagerID: users["David Namaliu"].ID,
			FundingSource: models.FundingADB,
		},
		{
			Name:        "Kokoda Track Access Road",
			Description: "Improvement of access roads to Kokoda Track for tourism and historical preservation",
			Location:    "Kokoda Track Access Points",
			ProvinceID:  provinces["OP"].ID, Status: models.ProjectStatusPlanning, Progress: 15,
			Budget: 25000000, Spent: 3750000,
			StartDate: date(2024, 9, 1), EndDate: date(2025, 8, 31),
			Contractor: "Pacific Roads Company", ManagerID: users["Michael Kila"].ID,
			FundingSource: models.FundingAustralia,
		},
		{
			Name:        "Sepik River Bridge Construction",
			Description: "Construction of new bridge over Sepik River to connect remote communities",
			Location:    "Sepik River Crossing, Wewak District",
			ProvinceID:  provinces["ESP"].ID, Status: models.ProjectStatusActive, Progress: 30,
			Budget: 45000000, Spent: 13500000,
			StartDate: date(2024, 2, 15), EndDate: date(2025, 11, 30),
			Contractor: "Island Bridge Works", ManagerID: users["David Namaliu"].ID,
			FundingSource: models.FundingJapan,
		},
		{
			Name:        "Bougainville Coastal Road Rehabilitation",
			Description: "Rehabilitation of coastal roads in Bougainville for post-conflict reconstruction",
			Location:    "Bougainville Coastal Areas",
			ProvinceID:  provinces["BP"].ID, Status: models.ProjectStatusOnHold, Progress: 8,
			Budget: 35000000, Spent: 2800000,
			StartDate: date(2024, 6, 1), EndDate: date(2026, 3, 31),
			Contractor: "PNG Construction Ltd", ManagerID: users["Michael Kila"].ID,
			FundingSource: models.FundingEU,
		},
		{
			Name:        "Mining Access Road - Ok Tedi",
			Description: "Construction of heavy-duty access road to Ok Tedi mining operations",
			Location:    "Star Mountains, Western Province",
			ProvinceID:  provinces["WP"].ID, Status: models.ProjectStatusCompleted, Progress: 100,
			Budget: 90000000, Spent: 86400000,
			StartDate: date(2022, 5, 1), EndDate: date(2024, 1, 15),
			Contractor: "Highlands Infrastructure", ManagerID: users["David Namaliu"].ID,
			FundingSource: models.FundingJoint,
		},
	}

	for i := range projects {
		projects[i].ID = uuid.New().String()
		projects[i].CreatedAt = time.Now().UTC()
		projects[i].UpdatedAt = time.Now().UTC()
		if err := db.Create(&projects[i]).Error; err != nil {
			return nil, err
		}
	}
	return projects, nil
}

type siteLocation struct {
	lat  float64
	lng  float64
	desc string
}

var siteLocations = []siteLocation{
	{-6.314993, 143.95555, "Mount Hagen City Center"},
	{-6.460734, 143.826765, "Highlands Highway KM 25"},
	{-6.689438, 143.69128, "Bridge Construction Site"},
	{-9.4438, 147.1803, "Port Moresby CBD"},
	{-9.3956, 147.1411, "Ring Road Junction"},
	{-8.8833, 147.7333, "Kokoda Track Access"},
	{-3.5896, 143.6297, "Sepik River Bridge Site"},
	{-6.2123, 155.2628, "Bougainville Coastal Road"},
	{-5.1989, 141.3994, "Ok Tedi Mining Access"},
}

func seedGPSEntries(db *gorm.DB, projects []models.Project, users map[string]models.User) error {
	userList := make([]models.User, 0, len(users))
	for _, u := range users {
		userList = append(userList, u)
	}

	var entries []models.GPSEntry
	index := 0
	for _, project := range projects {
		for i := 0; i < 3; i++ {
			site := siteLocations[index%len(siteLocations)]
			entries = append(entries, models.GPSEntry{
				ID:              uuid.New().String(),
				Latitude:        site.lat + float64(i)*0.001,
				Longitude:       site.lng + float64(i)*0.001,
				Description:     fmt.Sprintf("%s - %s", site.desc, project.Name),
				ProjectID:       project.ID,
				UserID:          userList[index%len(userList)].ID,
				TaskName:        "Site Survey",
				WorkType:        "Survey and Design",
				RoadSide:        "Both",
				StartChainage:   fmt.Sprintf("%d+000", i*5),
				EndChainage:     fmt.Sprintf("%d+500", i*5),
				TaskDescription: "Regular site inspection and progress monitoring",
				Timestamp:       time.Now().UTC().Add(-time.Duration(index+1) * 24 * time.Hour),
			})
			index++
		}
	}
	return db.Create(&entries).Error
}

func seedFinancialEntries(db *gorm.DB, projects []models.Project, users map[string]models.User, contractors []models.Contractor) error {
	officer := users["Mary Thomas"]

	categories := []models.FinancialCategoryEnum{
		models.CategoryMaterials,
		models.CategoryLabor,
		models.CategoryEquipment,
		models.CategoryTransport,
		models.CategoryUtilities,
	}

	var entries []models.FinancialEntry
	index := 0
	for _, project := range projects {
		for i := 0; i < 5; i++ {
			category := categories[i%len(categories)]
			entries = append(entries, models.FinancialEntry{
				ID:            uuid.New().String(),
				ProjectID:     project.ID,
				UserID:        officer.ID,
				Category:      category,
				Type:          models.TypeExpense,
				Amount:        float64(50000 + (index%5)*100000),
				Description:   fmt.Sprintf("%s costs for %s", category, project.Name),
				Date:          time.Now().UTC().Add(-time.Duration(index+1) * 48 * time.Hour),
				InvoiceNumber: fmt.Sprintf("INV-%d-%d", time.Now().Year(), index+1),
				Vendor:        contractors[index%len(contractors)].Name,
				IsApproved:    true,
				Currency:      "PGK",
				ExchangeRate:  1.0,
			})
			index++
		}
	}
	return db.Create(&entries).Error
}
