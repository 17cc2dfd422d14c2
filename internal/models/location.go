package models

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude] — the
// order the 2dsphere index requires.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates" validate:"required,len=2"`
}

func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
	}
}

func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) >= 2 {
		return p.Coordinates[1]
	}
	return 0
}

func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) >= 1 {
		return p.Coordinates[0]
	}
	return 0
}

// Address is a free-text address with its resolved coordinate, as stored on
// user profiles.
type Address struct {
	Text string  `json:"text" bson:"text"`
	Lat  float64 `json:"lat" bson:"lat"`
	Lng  float64 `json:"lng" bson:"lng"`
}

// RideLocation is an address plus both the raw coordinate pair and the
// derived GeoJSON point used by proximity queries.
type RideLocation struct {
	Address string   `json:"address" bson:"address"`
	Lat     float64  `json:"lat" bson:"lat"`
	Lng     float64  `json:"lng" bson:"lng"`
	Geo     GeoPoint `json:"geo" bson:"geo"`
}

func NewRideLocation(address string, lat, lng float64) RideLocation {
	return RideLocation{
		Address: address,
		Lat:     lat,
		Lng:     lng,
		Geo:     NewGeoPoint(lat, lng),
	}
}

// Coordinate is a bare lat/lng pair, used for assignment route overrides.
type Coordinate struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}
