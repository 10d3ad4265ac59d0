package plan

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

// PlanFeature links a plan to a feature, optionally capping usage.
// Features are replaced wholesale when a plan is updated.
type PlanFeature struct {
	featureID uint
	hasLimit  bool
	maxLimit  *int
}

func NewPlanFeature(featureID uint, hasLimit bool, maxLimit *int) (*PlanFeature, error) {
	if featureID == 0 {
		return nil, fmt.Errorf("feature ID is required")
	}
	if hasLimit && maxLimit == nil {
		return nil, fmt.Errorf("limited feature requires a maximum limit")
	}
	if maxLimit != nil && *maxLimit < 1 {
		return nil, fmt.Errorf("maximum limit must be positive")
	}

	return &PlanFeature{
		featureID: featureID,
		hasLimit:  hasLimit,
		maxLimit:  maxLimit,
	}, nil
}

func ReconstructPlanFeature(featureID uint, hasLimit bool, maxLimit *int) *PlanFeature {
	return &PlanFeature{
		featureID: featureID,
		hasLimit:  hasLimit,
		maxLimit:  maxLimit,
	}
}

func (f *PlanFeature) FeatureID() uint { return f.featureID }
func (f *PlanFeature) HasLimit() bool  { return f.hasLimit }
func (f *PlanFeature) MaxLimit() *int  { return f.maxLimit }

// Plan is a subscription tier. Pricing is per user per billing
// period; the minimum seat count floors the subscription total.
type Plan struct {
	id           uint
	sid          string
	name         string
	description  string
	price        float64
	minimumUsers int
	active       bool
	features     []*PlanFeature
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPlan(name, description string, price float64, minimumUsers int, active bool, features []*PlanFeature) (*Plan, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("plan price cannot be negative")
	}
	if minimumUsers < 1 {
		return nil, fmt.Errorf("minimum users must be at least 1")
	}

	if features == nil {
		features = []*PlanFeature{}
	}

	now := time.Now()

	return &Plan{
		sid:          id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
		name:         name,
		description:  description,
		price:        price,
		minimumUsers: minimumUsers,
		active:       active,
		features:     features,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPlan(
	planID uint,
	sid string,
	name string,
	description string,
	price float64,
	minimumUsers int,
	active bool,
	features []*PlanFeature,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("plan SID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("plan name is required")
	}

	if features == nil {
		features = []*PlanFeature{}
	}

	return &Plan{
		id:           planID,
		sid:          sid,
		name:         name,
		description:  description,
		price:        price,
		minimumUsers: minimumUsers,
		active:       active,
		features:     features,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) SID() string          { return p.sid }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Description() string  { return p.description }
func (p *Plan) Price() float64       { return p.price }
func (p *Plan) MinimumUsers() int    { return p.minimumUsers }
func (p *Plan) Active() bool         { return p.active }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

func (p *Plan) Features() []*PlanFeature {
	featuresCopy := make([]*PlanFeature, len(p.features))
	copy(featuresCopy, p.features)
	return featuresCopy
}

func (p *Plan) SetID(planID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = planID
	return nil
}

// MinimumTotal is the smallest amount a subscription to this plan can
// bill per period.
func (p *Plan) MinimumTotal() float64 {
	return float64(p.minimumUsers) * p.price
}

func (p *Plan) Update(name, description string, price float64, minimumUsers int, active bool) error {
	if name != "" {
		p.name = name
	}
	if description != "" {
		p.description = description
	}
	if price < 0 {
		return fmt.Errorf("plan price cannot be negative")
	}
	if minimumUsers < 1 {
		return fmt.Errorf("minimum users must be at least 1")
	}

	p.price = price
	p.minimumUsers = minimumUsers
	p.active = active
	p.updatedAt = time.Now()
	return nil
}

// ReplaceFeatures swaps the full feature set of the plan.
func (p *Plan) ReplaceFeatures(features []*PlanFeature) {
	if features == nil {
		features = []*PlanFeature{}
	}
	p.features = features
	p.updatedAt = time.Now()
}
