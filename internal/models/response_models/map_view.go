package response_models

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pin is one resolved place on the journey map. Day drives pin coloring on
// the client; Description feeds hover detail.
type Pin struct {
	Key         string `json:"key"`
	Position    LatLng `json:"position"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Day         int    `json:"day"`
}

type LatLngBounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// Viewport tells the client where to point the camera. Bounds is set only
// when two or more pins resolved; otherwise Center/Zoom apply.
type Viewport struct {
	Center  LatLng        `json:"center"`
	Zoom    int           `json:"zoom"`
	Bounds  *LatLngBounds `json:"bounds,omitempty"`
	Padding int           `json:"padding,omitempty"` // px, for the client fitBounds call
}

type MapView struct {
	Center    LatLng   `json:"center"`
	Pins      []Pin    `json:"pins"`
	Viewport  Viewport `json:"viewport"`
	Requested int      `json:"requested"`
	Resolved  int      `json:"resolved"`
}
