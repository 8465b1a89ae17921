package conversation

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	amountRe       = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\b`)
	pairRe         = regexp.MustCompile(`\b([A-Z]{3})\b\s*(?:TO|IN|=|->)\s*\b([A-Z]{3})\b`)
	codeRe         = regexp.MustCompile(`\b([A-Z]{3})\b`)
	weatherPlaceRe = regexp.MustCompile(`(?i)\b(?:in|at|for)\s+([a-z][a-z\s\-,.]{1,60})$`)
	weatherWordRe  = regexp.MustCompile(`(?i)\b(?:weather|forecast|temperature)\b\s+([a-z][a-z\s\-,.]{1,60})`)
	placeStopRe    = regexp.MustCompile(`(?i)\s+(?:and|then|but|or|today|tomorrow|now|please|right now)\b.*$`)
	compoundRe     = regexp.MustCompile(`(?i)\s(?:and|then)\s|[;?]\s*\S`)
	notPlaceRe     = regexp.MustCompile(`(?i)^(?:forecast|report|today|tomorrow|like|now|is|outside)\b`)
	weatherWordsRe = regexp.MustCompile(`(?i)\b(?:weather|temperature|forecast|rain|humidity|wind)\b`)
)

var (
	currencyKeywords = []string{"EXCHANGE", "RATE", "CONVERT", "HOW MUCH", "VALUE", "PRICE"}
	// Words that look like currency codes in upper-cased prompts.
	notCurrency = map[string]bool{
		"THE": true, "AND": true, "FOR": true, "HOW": true, "YOU": true, "ARE": true,
		"WHO": true, "WHY": true, "NOW": true, "ONE": true, "TWO": true, "GET": true,
		"CAN": true, "WAS": true, "HAS": true, "NOT": true, "BUY": true, "DAY": true,
	}
)

var weatherCodes = map[int]string{
	0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
	45: "Fog", 48: "Depositing rime fog",
	51: "Light drizzle", 53: "Moderate drizzle", 55: "Dense drizzle",
	56: "Light freezing drizzle", 57: "Dense freezing drizzle",
	61: "Slight rain", 63: "Moderate rain", 65: "Heavy rain",
	66: "Light freezing rain", 67: "Heavy freezing rain",
	71: "Slight snowfall", 73: "Moderate snowfall", 75: "Heavy snowfall", 77: "Snow grains",
	80: "Slight rain showers", 81: "Moderate rain showers", 82: "Violent rain showers",
	85: "Slight snow showers", 86: "Heavy snow showers",
	95: "Thunderstorm", 96: "Thunderstorm with slight hail", 99: "Thunderstorm with heavy hail",
}

type currencyQuery struct {
	amount      float64
	base, quote string
}

// instantAnswer tries currency then weather. ok is false when neither applies or the lookup failed.
func (uc *usecase) instantAnswer(ctx context.Context, query string) (string, bool) {
	if uc.live == nil {
		return "", false
	}
	if q, ok := parseCurrencyQuery(query); ok {
		ans, err := uc.currencyAnswer(ctx, q)
		if err == nil {
			return ans, true
		}
		uc.l.Warnf(ctx, "%s: currency %s->%s: %v", LogPrefixInstant, q.base, q.quote, err)
	}
	if place, ok := parseWeatherQuery(query); ok {
		ans, err := uc.weatherAnswer(ctx, place)
		if err == nil {
			return ans, true
		}
		uc.l.Warnf(ctx, "%s: weather %q: %v", LogPrefixInstant, place, err)
	}
	return "", false
}

func (uc *usecase) currencyAnswer(ctx context.Context, q currencyQuery) (string, error) {
	rates, err := uc.live.Rates(ctx, q.base)
	if err != nil {
		return "", err
	}
	rate, ok := rates.Rates[q.quote]
	if !ok {
		return fmt.Sprintf("I can't find a rate for %s. Use a valid 3-letter code (e.g., USD, EUR, BDT).", q.quote), nil
	}

	out := fmt.Sprintf("%s %s = %s %s\nRate: 1 %s = %s %s",
		formatAmount(q.amount), q.base, formatAmount(q.amount*rate), q.quote,
		q.base, formatAmount(rate), q.quote)
	if stamp := strings.TrimSpace(rates.TimeLastUpdate); stamp != "" {
		out += "\nLast update (UTC): " + stamp
	}
	return out, nil
}

func (uc *usecase) weatherAnswer(ctx context.Context, place string) (string, error) {
	geo, err := uc.live.Geocode(ctx, place)
	if err != nil {
		return "", err
	}
	if geo == nil {
		return fmt.Sprintf("I couldn't find a location called '%s'.", place), nil
	}
	f, err := uc.live.Forecast(ctx, geo.Latitude, geo.Longitude)
	if err != nil {
		return "", err
	}

	label := joinNonEmpty(", ", firstNonEmpty(geo.Name, place), geo.Admin1, geo.Country)
	desc := "Unknown"
	if f.Current.WeatherCode != nil {
		desc = describeWeather(*f.Current.WeatherCode)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather in %s: %s.", label, desc)

	var parts []string
	if v := f.Current.Temperature; v != nil {
		parts = append(parts, "Temp: "+formatFloat(*v)+"°C")
	}
	if v := f.Current.ApparentTemperature; v != nil {
		parts = append(parts, "Feels like: "+formatFloat(*v)+"°C")
	}
	if v := f.Current.RelativeHumidity; v != nil {
		parts = append(parts, "Humidity: "+formatFloat(*v)+"%")
	}
	if v := f.Current.WindSpeed; v != nil {
		parts = append(parts, "Wind: "+formatFloat(*v)+" km/h")
	}
	if len(parts) > 0 {
		b.WriteString("\n" + strings.Join(parts, " | "))
	}

	d := f.Daily
	if n := min(3, len(d.Time)); n > 0 {
		b.WriteString("\n\nNext 3 days:")
		for i := 0; i < n; i++ {
			day := "Unknown"
			if i < len(d.WeatherCode) {
				day = describeWeather(d.WeatherCode[i])
			}
			fmt.Fprintf(&b, "\n- %s: %s, %s–%s, precip. chance %s",
				d.Time[i], day,
				indexed(d.TemperatureMin, i, "°C"),
				indexed(d.TemperatureMax, i, "°C"),
				indexed(d.PrecipitationProbability, i, "%"))
		}
	}
	if f.Current.Time != "" {
		b.WriteString("\nUpdated local time: " + f.Current.Time)
	}
	return b.String(), nil
}

// parseCurrencyQuery recognises "100 USD to EUR", "exchange rate usd bdt" and "USD EUR".
func parseCurrencyQuery(query string) (currencyQuery, bool) {
	upper := strings.ToUpper(strings.TrimSpace(query))
	if upper == "" {
		return currencyQuery{}, false
	}

	q := currencyQuery{amount: 1}
	if m := amountRe.FindStringSubmatch(upper); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			q.amount = v
		}
	}

	if m := pairRe.FindStringSubmatch(upper); m != nil && !notCurrency[m[1]] && !notCurrency[m[2]] {
		q.base, q.quote = m[1], m[2]
		return q, true
	}

	var codes []string
	for _, m := range codeRe.FindAllStringSubmatch(upper, -1) {
		if !notCurrency[m[1]] {
			codes = append(codes, m[1])
		}
	}
	if len(codes) >= 2 && containsAny(upper, currencyKeywords) {
		q.base, q.quote = codes[0], codes[1]
		return q, true
	}
	if len(codes) == 2 && len(strings.Fields(upper)) <= 4 {
		q.base, q.quote = codes[0], codes[1]
		return q, true
	}
	return currencyQuery{}, false
}

// parseWeatherQuery returns the place of a weather question.
func parseWeatherQuery(query string) (string, bool) {
	text := strings.TrimSpace(query)
	if text == "" || !weatherWordsRe.MatchString(text) {
		return "", false
	}
	text = strings.TrimRight(text, "?!. ")

	var place string
	if m := weatherPlaceRe.FindStringSubmatch(text); m != nil {
		place = m[1]
	} else if m := weatherWordRe.FindStringSubmatch(text); m != nil {
		place = m[1]
	}
	place = strings.Trim(placeStopRe.ReplaceAllString(place, ""), " ,.-\t\n")
	if place == "" || notPlaceRe.MatchString(place) {
		return "", false
	}
	return place, true
}

// isCompound reports whether query asks more than one thing.
func isCompound(query string) bool {
	return compoundRe.MatchString(strings.TrimSpace(query))
}

func describeWeather(code int) string {
	if d, ok := weatherCodes[code]; ok {
		return d
	}
	return "Unknown"
}

// formatAmount prints at most 4 decimals with thousands separators, 8 decimals below 1.
func formatAmount(x float64) string {
	if x == 0 {
		return "0"
	}
	if math.Abs(x) < 1 {
		return trimZeros(strconv.FormatFloat(x, 'f', 8, 64))
	}
	s := trimZeros(strconv.FormatFloat(x, 'f', 4, 64))
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func indexed(vals []float64, i int, unit string) string {
	if i >= len(vals) {
		return "?"
	}
	return formatFloat(vals[i]) + unit
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
