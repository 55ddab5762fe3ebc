package playerstats

import "context"

// Repository describes read access to the published stat snapshot.
type Repository interface {
	List(ctx context.Context) ([]FormatStat, error)
	ListByFormat(ctx context.Context, format Format) ([]FormatStat, error)
	ListByPlayerName(ctx context.Context, playerName string) ([]FormatStat, error)
}
