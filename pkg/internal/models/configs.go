package models

const ConfigKeyWatermarkText = "TEXT_WATER_WORD"

type Config struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex"`
	Value string `json:"value"`
}
