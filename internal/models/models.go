package models

import (
	"time"

	"gorm.io/datatypes"
)

// ---------------------------------------------------------------------
// Enum types
// ---------------------------------------------------------------------

type ProjectStatusEnum string

const (
	ProjectStatusPlanning  ProjectStatusEnum = "PLANNING"
	ProjectStatusActive    ProjectStatusEnum = "ACTIVE"
	ProjectStatusOnHold    ProjectStatusEnum = "ON_HOLD"
	ProjectStatusCompleted ProjectStatusEnum = "COMPLETED"
	ProjectStatusCancelled ProjectStatusEnum = "CANCELLED"
)

type UserRoleEnum string

const (
	RoleAdmin            UserRoleEnum = "ADMIN"
	RoleProjectManager   UserRoleEnum = "PROJECT_MANAGER"
	RoleSiteEngineer     UserRoleEnum = "SITE_ENGINEER"
	RoleFinancialOfficer UserRoleEnum = "FINANCIAL_OFFICER"
)

type FinancialCategoryEnum string

const (
	CategoryMaterials   FinancialCategoryEnum = "MATERIALS"
	CategoryLabor       FinancialCategoryEnum = "LABOR"
	CategoryEquipment   FinancialCategoryEnum = "EQUIPMENT"
	CategoryTransport   FinancialCategoryEnum = "TRANSPORT"
	CategoryUtilities   FinancialCategoryEnum = "UTILITIES"
	CategoryOverhead    FinancialCategoryEnum = "OVERHEAD"
	CategoryContingency FinancialCategoryEnum = "CONTINGENCY"
	CategoryOther       FinancialCategoryEnum = "OTHER"
)

// FinancialCategories lists every valid category, in display order.
var FinancialCategories = []FinancialCategoryEnum{
	CategoryMaterials,
	CategoryLabor,
	CategoryEquipment,
	CategoryTransport,
	CategoryUtilities,
	CategoryOverhead,
	CategoryContingency,
	CategoryOther,
}

type FinancialTypeEnum string

const (
	TypeExpense    FinancialTypeEnum = "EXPENSE"
	TypePayment    FinancialTypeEnum = "PAYMENT"
	TypeRefund     FinancialTypeEnum = "REFUND"
	TypeAdjustment FinancialTypeEnum = "ADJUSTMENT"
)

// FinancialTypes lists every valid transaction type.
var FinancialTypes = []FinancialTypeEnum{
	TypeExpense,
	TypePayment,
	TypeRefund,
	TypeAdjustment,
}

type FundingSourceEnum string

const (
	FundingGovernment FundingSourceEnum = "GOVERNMENT"
	FundingWorldBank  FundingSourceEnum = "WORLD_BANK"
	FundingADB        FundingSourceEnum = "ADB"
	FundingAustralia  FundingSourceEnum = "AUSTRALIA"
	FundingJapan      FundingSourceEnum = "JAPAN"
	FundingEU         FundingSourceEnum = "EU"
	FundingJoint      FundingSourceEnum = "JOINT"
	FundingOther      FundingSourceEnum = "OTHER"
)

// HealthStatusEnum is the per-subsystem health reported by /api/monitoring.
type HealthStatusEnum string

const (
	HealthHealthy  HealthStatusEnum = "healthy"
	HealthWarning  HealthStatusEnum = "warning"
	HealthError    HealthStatusEnum = "error"
	HealthCritical HealthStatusEnum = "critical"
)

// ---------------------------------------------------------------------
// Models
// ---------------------------------------------------------------------

// Province represents the provinces table. Immutable reference data,
// seeded once by cmd/seed.
type Province struct {
	ID     string `gorm:"primaryKey;column:id" json:"id"`
	Name   string `gorm:"column:name;not null" json:"name"`
	Code   string `gorm:"column:code;not null;unique" json:"code"`
	Region string `gorm:"column:region;not null" json:"region"`
}

func (Province) TableName() string {
	return "provinces"
}

// User represents the users table.
type User struct {
	ID        string       `gorm:"primaryKey;column:id" json:"id"`
	Email     string       `gorm:"column:email;not null;unique" json:"email"`
	Password  string       `gorm:"column:password;not null" json:"-"`
	Name      string       `gorm:"column:name;not null" json:"name"`
	Role      UserRoleEnum `gorm:"column:role;not null" json:"role"`
	IsActive  bool         `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt time.Time    `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time    `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// WorkType represents the work_types table.
type WorkType struct {
	ID       string `gorm:"primaryKey;column:id" json:"id"`
	Name     string `gorm:"column:name;not null;unique" json:"name"`
	Category string `gorm:"column:category;not null" json:"category"`
}

func (WorkType) TableName() string {
	return "work_types"
}

// Contractor represents the contractors table.
type Contractor struct {
	ID        string  `gorm:"primaryKey;column:id" json:"id"`
	Name      string  `gorm:"column:name;not null;unique" json:"name"`
	Email     string  `gorm:"column:email" json:"email"`
	Phone     string  `gorm:"column:phone" json:"phone"`
	Specialty string  `gorm:"column:specialty" json:"specialty"`
	Rating    float64 `gorm:"column:rating" json:"rating"`
	License   string  `gorm:"column:license" json:"license"`
}

func (Contractor) TableName() string {
	return "contractors"
}

// Project represents the projects table. Spent is deliberately never
// checked against budget: cost overruns are recorded as-is.
type Project struct {
	ID            string            `gorm:"primaryKey;column:id" json:"id"`
	Name          string            `gorm:"column:name;not null" json:"name"`
	Description   string            `gorm:"column:description;type:text" json:"description"`
	Location      string            `gorm:"column:location;not null" json:"location"`
	ProvinceID    string            `gorm:"column:province_id;not null" json:"provinceId"`
	Status        ProjectStatusEnum `gorm:"column:status;not null" json:"status"`
	Progress      int               `gorm:"column:progress;default:0" json:"progress"`
	Budget        float64           `gorm:"column:budget;default:0" json:"budget"`
	Spent         float64           `gorm:"column:spent;default:0" json:"spent"`
	StartDate     *time.Time        `gorm:"column:start_date" json:"startDate,omitempty"`
	EndDate       *time.Time        `gorm:"column:end_date" json:"endDate,omitempty"`
	Contractor    string            `gorm:"column:contractor" json:"contractor"`
	ManagerID     string            `gorm:"column:manager_id" json:"managerId"`
	FundingSource FundingSourceEnum `gorm:"column:funding_source" json:"fundingSource"`
	CreatedAt     time.Time         `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"column:updated_at" json:"updatedAt"`

	Province *Province `gorm:"foreignKey:ProvinceID" json:"province,omitempty"`
	Manager  *User     `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`

	// Derived child counts, attached on read by the relational store.
	GPSEntryCount       int64 `gorm:"-" json:"gpsEntryCount,omitempty"`
	FinancialEntryCount int64 `gorm:"-" json:"financialEntryCount,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// GPSEntry represents the gps_entries table. Entries are append-only;
// nothing in the system updates or deletes them.
type GPSEntry struct {
	ID              string         `gorm:"primaryKey;column:id" json:"id"`
	Latitude        float64        `gorm:"column:latitude;not null" json:"latitude"`
	Longitude       float64        `gorm:"column:longitude;not null" json:"longitude"`
	Description     string         `gorm:"column:description;type:text" json:"description"`
	ProjectID       string         `gorm:"column:project_id;not null;index" json:"projectId"`
	UserID          string         `gorm:"column:user_id;not null;index" json:"userId"`
	TaskName        string         `gorm:"column:task_name" json:"taskName"`
	WorkType        string         `gorm:"column:work_type" json:"workType"`
	RoadSide        string         `gorm:"column:road_side" json:"roadSide"`
	StartChainage   string         `gorm:"column:start_chainage" json:"startChainage"`
	EndChainage     string         `gorm:"column:end_chainage" json:"endChainage"`
	TaskDescription string         `gorm:"column:task_description;type:text" json:"taskDescription"`
	Photos          datatypes.JSON `gorm:"column:photos;type:jsonb" json:"photos,omitempty"`
	Timestamp       time.Time      `gorm:"column:timestamp;not null;index" json:"timestamp"`
	CreatedAt       time.Time      `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (GPSEntry) TableName() string {
	return "gps_entries"
}

// FinancialEntry represents the financial_entries table.
type FinancialEntry struct {
	ID            string                `gorm:"primaryKey;column:id" json:"id"`
	ProjectID     string                `gorm:"column:project_id;not null;index" json:"projectId"`
	UserID        string                `gorm:"column:user_id;not null" json:"userId"`
	Category      FinancialCategoryEnum `gorm:"column:category;not null" json:"category"`
	Type          FinancialTypeEnum     `gorm:"column:type;not null" json:"type"`
	Amount        float64               `gorm:"column:amount;not null" json:"amount"`
	Description   string                `gorm:"column:description;type:text;not null" json:"description"`
	Date          time.Time             `gorm:"column:date" json:"date"`
	InvoiceNumber string                `gorm:"column:invoice_number" json:"invoiceNumber"`
	Vendor        string                `gorm:"column:vendor" json:"vendor"`
	IsApproved    bool                  `gorm:"column:is_approved;default:false" json:"isApproved"`
	ApprovedBy    *string               `gorm:"column:approved_by" json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time            `gorm:"column:approved_at" json:"approvedAt,omitempty"`
	Currency      string                `gorm:"column:currency;default:PGK" json:"currency"`
	ExchangeRate  float64               `gorm:"column:exchange_rate;default:1" json:"exchangeRate"`
	CreatedAt     time.Time             `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (FinancialEntry) TableName() string {
	return "financial_entries"
}
