package instant

import "context"

// IClient looks up live values from keyless JSON APIs.
type IClient interface {
	Rates(ctx context.Context, base string) (*Rates, error)
	Geocode(ctx context.Context, place string) (*Place, error)
	Forecast(ctx context.Context, lat, lon float64) (*Forecast, error)
}
