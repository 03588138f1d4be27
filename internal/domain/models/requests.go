package models

// Requests for reporting HTTP endpoints. Defined in domain for consistency
// and reuse.
//
// Period is not constrained with oneof: unrecognized tokens deliberately fall
// back to the 12-month scheme instead of failing the request.

type RevenueRequest struct {
	Period string `query:"period" json:"period" default:"12m"`
}

type TopProductsRequest struct {
	Period string `query:"period" json:"period" default:"12m"`
	Limit  int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=50"`
}

type TopCategoriesRequest struct {
	Limit int `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=50"`
}

type DashboardRequest struct {
	Period string `query:"period" json:"period" default:"12m"`
	Limit  int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=50"`
}

type MarkReadRequest struct {
	ID string `param:"id" json:"id" validate:"required"`
}
