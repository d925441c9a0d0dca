package vocabulary

import "sort"

// All is the selector that disables the month or day filter
const All = "all"

var cityData = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	"washington":    "washington.csv",
}

var months = []string{"january", "february", "march", "april", "may", "june"}

var days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Cities returns the supported cities sorted alphabetically
func Cities() []string {
	cities := make([]string, 0, len(cityData))
	for city := range cityData {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// CityFile returns the source file name of a supported city
func CityFile(city string) (string, bool) {
	file, ok := cityData[city]
	return file, ok
}

// MonthSelectors returns the valid month selectors, "all" included
func MonthSelectors() []string {
	return append(append([]string{}, months...), All)
}

// DaySelectors returns the valid day selectors, "all" included
func DaySelectors() []string {
	return append(append([]string{}, days...), All)
}
