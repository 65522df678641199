package types

import (
	"time"

	"github.com/google/uuid"
)

// NeoverseLog is an append-only gameplay telemetry record imported once from
// CSV at startup. Columns mirror the 16-column export schema.
type NeoverseLog struct {
	ID                     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlayerID               string    `gorm:"not null;index;column:player_id" json:"player_id"`
	Timestamp              time.Time `gorm:"not null;column:timestamp" json:"timestamp"`
	HoursPlayed            float64   `gorm:"column:hours_played" json:"hours_played"`
	MoneySpent             float64   `gorm:"column:money_spent" json:"money_spent"`
	CriminalScore          float64   `gorm:"column:criminal_score" json:"criminal_score"`
	MissionsCompleted      int       `gorm:"column:missions_completed" json:"missions_completed"`
	PlayerRank             string    `gorm:"column:player_rank" json:"player_rank"`
	TeamAffiliation        string    `gorm:"column:team_affiliation" json:"team_affiliation"`
	VIPStatus              string    `gorm:"column:vip_status" json:"vip_status"`
	CashOnHand             float64   `gorm:"column:cash_on_hand" json:"cash_on_hand"`
	SyncStability          float64   `gorm:"column:sync_stability" json:"sync_stability"`
	QuestExploitScore      float64   `gorm:"column:quest_exploit_score" json:"quest_exploit_score"`
	PlayerLevel            int       `gorm:"column:player_level" json:"player_level"`
	DarkMarketTransactions int       `gorm:"column:dark_market_transactions" json:"dark_market_transactions"`
	TransactionAmount      float64   `gorm:"column:transaction_amount" json:"transaction_amount"`
	NeuralLinkStability    float64   `gorm:"column:neural_link_stability" json:"neural_link_stability"`
	CreatedAt              time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (NeoverseLog) TableName() string { return "neoverse_log" }
