package httpapi

// Query parameter shapes checked with the validator before reaching a use case.
// Enumerations (format, role, metric) are checked by the use cases so the error
// names the accepted values. The query tag names the parameter in error items.

type listPlayersRequest struct {
	Search  string `query:"search" validate:"max=100"`
	Country string `query:"country" validate:"max=100"`
	Role    string `query:"role"`
	Format  string `query:"format"`
	Page    int    `query:"page" validate:"gte=1"`
	Limit   int    `query:"limit" validate:"gte=1,lte=500"`
}

type leaderboardRequest struct {
	Format string `query:"format"`
	Type   string `query:"type"`
	Limit  int    `query:"limit" validate:"gte=1,lte=1000"`
}

type compareRequest struct {
	Players []int64 `query:"players" validate:"required,min=1,max=10,dive,gt=0"`
	Metrics string  `query:"metrics"`
}

type boundaryHittersRequest struct {
	Format string `query:"format"`
	Limit  int    `query:"limit" validate:"gte=1,lte=1000"`
}

type scatterRequest struct {
	Format  string `query:"format"`
	MinRuns int    `query:"minRuns" validate:"gte=0"`
}
