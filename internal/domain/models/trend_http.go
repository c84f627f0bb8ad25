package models

// Requests for trend HTTP endpoints. Defined in domain for consistency and reuse.

type TrendRequest struct {
	Keyword      string `query:"keyword" json:"keyword"`
	Organization string `query:"organization" json:"organization"`
	Industry     string `query:"industry" json:"industry"`
	Region       string `query:"region" json:"region"`
	DateFrom     string `query:"date_from" json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo       string `query:"date_to" json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Mode         string `query:"mode" json:"mode" default:"amount" validate:"oneof=amount ratio"`
	ShowEMA      bool   `query:"show_ema" json:"show_ema"`
	ShowLOESS    bool   `query:"show_loess" json:"show_loess"`
	// Fields restricts the statistics to a comma-separated subset of the
	// active fields; empty means all of them are visible.
	Fields string `query:"fields" json:"fields"`
}

type RecordsRequest struct {
	Keyword      string `query:"keyword" json:"keyword"`
	Organization string `query:"organization" json:"organization"`
	Industry     string `query:"industry" json:"industry"`
	Region       string `query:"region" json:"region"`
	DateFrom     string `query:"date_from" json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo       string `query:"date_to" json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Skip         int    `query:"skip" json:"skip" validate:"gte=0"`
	Limit        int    `query:"limit" json:"limit" default:"100" validate:"gte=1,lte=1000"`
}
