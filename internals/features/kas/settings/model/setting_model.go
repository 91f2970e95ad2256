package model

import "time"

// Kunci setting yang dikenal
const (
	KeyStartDate     = "start_date"
	KeyWeeklyAmount  = "weekly_amount"
	KeyLateThreshold = "late_threshold"
	KeyClassName     = "class_name"
)

type SettingModel struct {
	SettingKey       string    `gorm:"column:setting_key;type:varchar(64);primaryKey" json:"setting_key"`
	SettingValue     string    `gorm:"column:setting_value;type:text;not null"        json:"setting_value"`
	SettingUpdatedAt time.Time `gorm:"column:setting_updated_at;autoUpdateTime"       json:"setting_updated_at"`
}

func (SettingModel) TableName() string { return "settings" }
