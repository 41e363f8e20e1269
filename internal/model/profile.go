package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Profile is the financial survey answered by a user. One per user, replaced on every submission.
type Profile struct {
	ID              string     `db:"id" json:"-"`
	UserID          string     `db:"user_id" json:"user_id"`
	Age             int        `db:"age" json:"age"`
	Gender          string     `db:"gender" json:"gender"`
	Occupation      string     `db:"occupation" json:"occupation"`
	Residence       string     `db:"residence" json:"residence"`
	MonthlyIncome   int        `db:"monthly_income" json:"monthly_income"`
	Dependents      int        `db:"dependents" json:"dependents"`
	InvestmentStyle string     `db:"investment_style" json:"investment_style"`
	FinancialGoal   StringList `db:"financial_goal" json:"financial_goal"`
	CreatedAt       time.Time  `db:"created_at" json:"-"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src any, dst any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
