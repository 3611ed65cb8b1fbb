package store

import (
	"time"

	"github.com/doworks-png/road-monitor/internal/models"
)

// Fixture data for the in-memory demo store and the seed command.
// Reference catalogs (provinces, work types, contractors) are shared by
// both; the demo entity sets mirror what the dashboard shows without a
// database.

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ts(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// DemoProvinces is the reference subset served by the in-memory store.
func DemoProvinces() []models.Province {
	return []models.Province{
		{ID: "prov-1", Name: "Western Highlands", Code: "WHP", Region: "Highlands"},
		{ID: "prov-2", Name: "National Capital District", Code: "NCD", Region: "Southern"},
		{ID: "prov-3", Name: "Morobe", Code: "MPL", Region: "Momase"},
		{ID: "prov-4", Name: "Eastern Highlands", Code: "EHP", Region: "Highlands"},
		{ID: "prov-5", Name: "Southern Highlands", Code: "SHP", Region: "Highlands"},
		{ID: "prov-6", Name: "Central", Code: "CPK", Region: "Southern"},
		{ID: "prov-7", Name: "Chimbu", Code: "CHM", Region: "Highlands"},
		{ID: "prov-8", Name: "East New Britain", Code: "ENB", Region: "Islands"},
		{ID: "prov-9", Name: "East Sepik", Code: "ESP", Region: "Momase"},
		{ID: "prov-10", Name: "Enga", Code: "ENG", Region: "Highlands"},
	}
}

// DemoUsers is the fixed user set of the in-memory store.
func DemoUsers() []models.User {
	return []models.User{
		{
			ID: "user-1", Email: "admin@doworks.gov.pg", Name: "Demo Administrator",
			Role: models.RoleAdmin, IsActive: true,
			CreatedAt: date(2024, 1, 1), UpdatedAt: date(2024, 1, 1),
		},
		{
			ID: "user-2", Email: "john.kerenga@doworks.gov.pg", Name: "John Kerenga",
			Role: models.RoleProjectManager, IsActive: true,
			CreatedAt: date(2024, 3, 15), UpdatedAt: date(2024, 3, 15),
		},
		{
			ID: "user-3", Email: "sarah.mendi@doworks.gov.pg", Name: "Sarah Mendi",
			Role: models.RoleSiteEngineer, IsActive: true,
			CreatedAt: date(2024, 6, 1), UpdatedAt: date(2024, 6, 1),
		},
		{
			ID: "user-4", Email: "peter.waigani@doworks.gov.pg", Name: "Peter Waigani",
			Role: models.RoleFinancialOfficer, IsActive: true,
			CreatedAt: date(2024, 8, 1), UpdatedAt: date(2024, 8, 1),
		},
	}
}

// DemoProjects is the fixed project set of the in-memory store.
func DemoProjects() []models.Project {
	return []models.Project{
		{
			ID:          "proj-1",
			Name:        "Mt. Hagen-Kagamuga Road Upgrade",
			Description: "Upgrade of the critical 15km road connecting Mt. Hagen city to Kagamuga Airport, including improved drainage, bridge repairs, and complete resurfacing.",
			Location:    "Mt. Hagen to Kagamuga Airport, Western Highlands Province",
			ProvinceID:  "prov-1", Status: models.ProjectStatusActive, Progress: 68,
			Budget: 45000000, Spent: 30600000,
			StartDate: ptr(date(2024, 3, 1)), EndDate: ptr(date(2025, 6, 30)),
			Contractor: "PNG Roads Limited", ManagerID: "user-2",
			FundingSource: models.FundingGovernment,
		},
		{
			ID:          "proj-2",
			Name:        "Port Moresby Ring Road Extension",
			Description: "Major extension of the ring road system connecting Gerehu, Morata, and surrounding suburbs to improve traffic flow and reduce congestion in Port Moresby.",
			Location:    "Port Moresby Metropolitan Area, National Capital District",
			ProvinceID:  "prov-2", Status: models.ProjectStatusActive, Progress: 45,
			Budget: 95000000, Spent: 42750000,
			StartDate: ptr(date(2024, 1, 15)), EndDate: ptr(date(2025, 12, 31)),
			Contractor: "Capital Infrastructure Pty Ltd", ManagerID: "user-2",
			FundingSource: models.FundingGovernment,
		},
		{
			ID:          "proj-3",
			Name:        "Lae-Nadzab Highway Reconstruction",
			Description: "Complete reconstruction of the 42km highway connecting Lae city to Nadzab Airport, including new bridges, improved drainage, and upgraded intersections.",
			Location:    "Lae to Nadzab Airport, Morobe Province",
			ProvinceID:  "prov-3", Status: models.ProjectStatusPlanning, Progress: 18,
			Budget: 68000000, Spent: 12240000,
			StartDate: ptr(date(2024, 6, 1)), EndDate: ptr(date(2026, 3, 31)),
			Contractor: "Morobe Construction Group", ManagerID: "user-2",
			FundingSource: models.FundingGovernment,
		},
		{
			ID:          "proj-4",
			Name:        "Highlands Highway Maintenance Program",
			Description: "Comprehensive maintenance program for the Highlands Highway covering critical sections from Lae to Mt. Hagen with emphasis on landslide prevention.",
			Location:    "Lae to Mt. Hagen via Highlands Highway",
			ProvinceID:  "prov-4", Status: models.ProjectStatusActive, Progress: 32,
			Budget: 52000000, Spent: 16640000,
			StartDate: ptr(date(2024, 2, 1)), EndDate: ptr(date(2025, 8, 31)),
			Contractor: "Highlands Road Maintenance Ltd", ManagerID: "user-2",
			FundingSource: models.FundingGovernment,
		},
		{
			ID:          "proj-5",
			Name:        "Vanimo-Green River Road Upgrade",
			Description: "Upgrading the coastal road connecting Vanimo to Green River to improve access to the Indonesia border and support economic development in Sandaun Province.",
			Location:    "Vanimo to Green River, Sandaun Province",
			ProvinceID:  "prov-5", Status: models.ProjectStatusOnHold, Progress: 8,
			Budget: 38000000, Spent: 3040000,
			StartDate: ptr(date(2024, 4, 1)), EndDate: ptr(date(2025, 10, 31)),
			Contractor: "Border Region Contractors", ManagerID: "user-2",
			FundingSource: models.FundingGovernment,
		},
	}
}

// DemoGPSEntries is the fixed GPS entry set of the in-memory store. All
// timestamps are in the past, so the last-24h metric starts at zero.
func DemoGPSEntries() []models.GPSEntry {
	return []models.GPSEntry{
		{
			ID: "gps-1", Latitude: -5.837104, Longitude: 144.295472,
			Description: "Mt. Hagen Town Center - Project Start Point",
			ProjectID:   "proj-1", UserID: "user-3",
			TaskName: "Site Survey and Traffic Count", WorkType: "Survey",
			RoadSide: "Both", StartChainage: "0+000", EndChainage: "0+500",
			TaskDescription: "Initial site survey, traffic count, and existing condition assessment",
			Timestamp:       ts(2024, 3, 5, 8, 30), CreatedAt: ts(2024, 3, 5, 8, 30),
		},
		{
			ID: "gps-2", Latitude: -9.4438, Longitude: 147.1803,
			Description: "Jacksons Airport Junction - Ring Road Extension",
			ProjectID:   "proj-2", UserID: "user-3",
			TaskName: "Foundation Preparation", WorkType: "Construction",
			RoadSide: "Left", StartChainage: "1+200", EndChainage: "1+800",
			TaskDescription: "Foundation preparation and utility relocation for ring road extension",
			Timestamp:       ts(2024, 1, 20, 10, 15), CreatedAt: ts(2024, 1, 20, 10, 15),
		},
		{
			ID: "gps-3", Latitude: -6.7248, Longitude: 147.0003,
			Description: "Lae Port Access Road Assessment",
			ProjectID:   "proj-3", UserID: "user-3",
			TaskName: "Environmental Assessment", WorkType: "Assessment",
			RoadSide: "Both", StartChainage: "0+000", EndChainage: "2+000",
			TaskDescription: "Environmental impact assessment and cultural heritage survey",
			Timestamp:       ts(2024, 6, 15, 14, 30), CreatedAt: ts(2024, 6, 15, 14, 30),
		},
	}
}

// DemoFinancialEntries is the fixed financial entry set of the in-memory
// store.
func DemoFinancialEntries() []models.FinancialEntry {
	return []models.FinancialEntry{
		{
			ID: "fin-1", ProjectID: "proj-1", UserID: "user-2",
			Category: models.CategoryMaterials, Type: models.TypeExpense, Amount: 2500000,
			Description: "Aggregate, bitumen, and cement delivery for road surfacing",
			Date:        date(2024, 3, 10), InvoiceNumber: "INV-2024-001",
			Vendor: "PNG Materials Supply Co.", IsApproved: true,
			ApprovedBy: ptr("user-1"), ApprovedAt: ptr(date(2024, 3, 12)),
			Currency: "PGK", ExchangeRate: 1.0,
		},
		{
			ID: "fin-2", ProjectID: "proj-2", UserID: "user-2",
			Category: models.CategoryEquipment, Type: models.TypeExpense, Amount: 1800000,
			Description: "Heavy machinery rental - excavators, graders, and compactors",
			Date:        date(2024, 1, 25), InvoiceNumber: "INV-2024-002",
			Vendor: "PNG Heavy Equipment Hire", IsApproved: true,
			ApprovedBy: ptr("user-1"), ApprovedAt: ptr(date(2024, 1, 26)),
			Currency: "PGK", ExchangeRate: 1.0,
		},
		{
			ID: "fin-3", ProjectID: "proj-1", UserID: "user-4",
			Category: models.CategoryLabor, Type: models.TypePayment, Amount: 3200000,
			Description: "Monthly wages for construction crew - December 2024",
			Date:        date(2024, 12, 1), InvoiceNumber: "PAY-2024-003",
			Vendor: "PNG Roads Limited", IsApproved: true,
			ApprovedBy: ptr("user-1"), ApprovedAt: ptr(date(2024, 12, 2)),
			Currency: "PGK", ExchangeRate: 1.0,
		},
		{
			ID: "fin-4", ProjectID: "proj-2", UserID: "user-4",
			Category: models.CategoryUtilities, Type: models.TypeExpense, Amount: 850000,
			Description: "Utility relocation and protection works",
			Date:        date(2024, 11, 15), InvoiceNumber: "INV-2024-004",
			Vendor: "PNG Power Limited", IsApproved: true,
			ApprovedBy: ptr("user-1"), ApprovedAt: ptr(date(2024, 11, 16)),
			Currency: "PGK", ExchangeRate: 1.0,
		},
		{
			ID: "fin-5", ProjectID: "proj-3", UserID: "user-4",
			Category: models.CategoryOther, Type: models.TypeExpense, Amount: 620000,
			Description: "Environmental and social impact assessment consultancy",
			Date:        date(2024, 6, 20), InvoiceNumber: "INV-2024-005",
			Vendor: "Pacific Environmental Consultants", IsApproved: true,
			ApprovedBy: ptr("user-1"), ApprovedAt: ptr(date(2024, 6, 22)),
			Currency: "PGK", ExchangeRate: 1.0,
		},
	}
}

// WorkTypeCatalog is the full work type reference set, shared by the
// in-memory store and the seed command.
func WorkTypeCatalog() []models.WorkType {
	return []models.WorkType{
		{ID: "wt-1", Name: "Road Construction", Category: "Construction"},
		{ID: "wt-2", Name: "Bridge Construction", Category: "Construction"},
		{ID: "wt-3", Name: "Culvert Installation", Category: "Construction"},
		{ID: "wt-4", Name: "Drainage Construction", Category: "Construction"},
		{ID: "wt-5", Name: "Pavement Marking", Category: "Construction"},
		{ID: "wt-6", Name: "Road Maintenance", Category: "Maintenance"},
		{ID: "wt-7", Name: "Pothole Repair", Category: "Maintenance"},
		{ID: "wt-8", Name: "Shoulder Maintenance", Category: "Maintenance"},
		{ID: "wt-9", Name: "Vegetation Clearing", Category: "Maintenance"},
		{ID: "wt-10", Name: "Sign Installation", Category: "Safety"},
		{ID: "wt-11", Name: "Guardrail Installation", Category: "Safety"},
		{ID: "wt-12", Name: "Traffic Control", Category: "Safety"},
		{ID: "wt-13", Name: "Survey and Design", Category: "Planning"},
		{ID: "wt-14", Name: "Environmental Assessment", Category: "Planning"},
		{ID: "wt-15", Name: "Quality Testing", Category: "Quality Control"},
		{ID: "wt-16", Name: "Material Testing", Category: "Quality Control"},
	}
}

// ContractorCatalog is the contractor reference set.
func ContractorCatalog() []models.Contractor {
	return []models.Contractor{
		{ID: "con-1", Name: "PNG Construction Ltd", Email: "contact@pngconstruction.pg", Phone: "+675 321 1234", Specialty: "Road Construction", Rating: 4.5, License: "PNG-CONST-001"},
		{ID: "con-2", Name: "Highlands Infrastructure", Email: "info@highlands.pg", Phone: "+675 321 2345", Specialty: "Bridge Construction", Rating: 4.2, License: "PNG-CONST-002"},
		{ID: "con-3", Name: "Pacific Roads Company", Email: "office@pacificroads.pg", Phone: "+675 321 3456", Specialty: "Highway Construction", Rating: 4.8, License: "PNG-CONST-003"},
		{ID: "con-4", Name: "Island Bridge Works", Email: "contact@islandbridge.pg", Phone: "+675 321 4567", Specialty: "Bridge and Culvert", Rating: 4.3, License: "PNG-CONST-004"},
		{ID: "con-5", Name: "Mount Hagen Builders", Email: "info@mthagen.pg", Phone: "+675 321 5678", Specialty: "Mountain Road Construction", Rating: 4.1, License: "PNG-CONST-005"},
		{ID: "con-6", Name: "Port Moresby Engineering", Email: "projects@pmeng.pg", Phone: "+675 321 6789", Specialty: "Urban Infrastructure", Rating: 4.6, License: "PNG-CONST-006"},
	}
}

// AllProvinces is the complete 22-province reference set used when
// seeding a database.
func AllProvinces() []models.Province {
	return []models.Province{
		{Name: "Western Province", Code: "WP", Region: "Southern"},
		{Name: "Gulf Province", Code: "GP", Region: "Southern"},
		{Name: "Central Province", Code: "CP", Region: "Southern"},
		{Name: "National Capital District", Code: "NCD", Region: "Southern"},
		{Name: "Oro Province", Code: "OP", Region: "Northern"},
		{Name: "Southern Highlands Province", Code: "SHP", Region: "Highlands"},
		{Name: "Western Highlands Province", Code: "WHP", Region: "Highlands"},
		{Name: "Enga Province", Code: "EP", Region: "Highlands"},
		{Name: "Hela Province", Code: "HP", Region: "Highlands"},
		{Name: "Jiwaka Province", Code: "JP", Region: "Highlands"},
		{Name: "Chimbu Province", Code: "ChP", Region: "Highlands"},
		{Name: "Eastern Highlands Province", Code: "EHP", Region: "Highlands"},
		{Name: "Morobe Province", Code: "MP", Region: "Momase"},
		{Name: "Madang Province", Code: "MaP", Region: "Momase"},
		{Name: "East Sepik Province", Code: "ESP", Region: "Momase"},
		{Name: "Sandaun Province", Code: "SP", Region: "Momase"},
		{Name: "Manus Province", Code: "MnP", Region: "Islands"},
		{Name: "New Ireland Province", Code: "NIP", Region: "Islands"},
		{Name: "East New Britain Province", Code: "ENBP", Region: "Islands"},
		{Name: "West New Britain Province", Code: "WNBP", Region: "Islands"},
		{Name: "Bougainville Province", Code: "BP", Region: "Islands"},
		{Name: "Milne Bay Province", Code: "MBP", Region: "Islands"},
	}
}
