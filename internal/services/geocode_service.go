package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"vibego/internal/models/response_models"
	"vibego/pkg/memcache"
	"vibego/pkg/utils"
)

// GeocoderInterface resolves one text query to coordinates. found=false means
// the geocoder answered but knows no such place; err means the lookup itself
// failed. Both are skippable for individual pins.
type GeocoderInterface interface {
	Resolve(ctx context.Context, query string) (pos response_models.LatLng, found bool, err error)
}

// ---------------- Google Geocoding client ----------------

type GoogleGeocodeClient struct {
	HTTP    *http.Client
	APIKey  string
	Cache   memcache.GeocodeCache
	Limiter *rate.Limiter
	BaseURL string
}

func NewGoogleGeocodeClient(cache memcache.GeocodeCache) *GoogleGeocodeClient {
	return &GoogleGeocodeClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		Cache:   cache,
		Limiter: rate.NewLimiter(rate.Limit(10), 10),
		BaseURL: "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

const geocodeCacheTTL = 24 * time.Hour

func (c *GoogleGeocodeClient) Resolve(ctx context.Context, query string) (response_models.LatLng, bool, error) {
	if c.APIKey == "" {
		return response_models.LatLng{}, false, utils.ErrMapsCredentialMissing
	}

	if c.Cache != nil {
		if lat, lng, ok := c.Cache.Get(query); ok {
			return response_models.LatLng{Lat: lat, Lng: lng}, true, nil
		}
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		return response_models.LatLng{}, false, err
	}

	u := fmt.Sprintf("%s?address=%s&key=%s", c.BaseURL, url.QueryEscape(query), url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return response_models.LatLng{}, false, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return response_models.LatLng{}, false, fmt.Errorf("geocode http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return response_models.LatLng{}, false, fmt.Errorf("geocode bad status: %s", resp.Status)
	}

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return response_models.LatLng{}, false, fmt.Errorf("geocode decode: %w", err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return response_models.LatLng{}, false, nil
	}

	loc := payload.Results[0].Geometry.Location
	if c.Cache != nil {
		c.Cache.Set(query, loc.Lat, loc.Lng, geocodeCacheTTL)
	}
	return response_models.LatLng{Lat: loc.Lat, Lng: loc.Lng}, true, nil
}

// ---------------- Enrichment service ----------------

type GeocodeServiceInterface interface {
	BuildMapView(ctx context.Context, itinerary *response_models.Itinerary) (*response_models.MapView, error)
}

type GeocodeService struct {
	geocoder GeocoderInterface
	workers  int
}

func NewGeocodeService(geocoder GeocoderInterface) GeocodeServiceInterface {
	return &GeocodeService{geocoder: geocoder, workers: 4}
}

// Camera defaults when nothing resolves at all.
var fallbackCenter = response_models.LatLng{Lat: 35.6762, Lng: 139.6503}

const (
	fallbackZoom    = 2
	defaultZoom     = 6
	singlePinZoom   = 12
	boundingPadding = 100
)

type geocodeTask struct {
	key         string
	query       string
	label       string
	description string
	day         int
}

// BuildMapView geocodes the destination for the camera anchor, then resolves
// every activity and restaurant independently. A failed lookup degrades pin
// coverage and nothing else; only a missing API credential fails the view.
func (g *GeocodeService) BuildMapView(ctx context.Context, itinerary *response_models.Itinerary) (*response_models.MapView, error) {
	center, centerOK := g.resolveCenter(ctx, itinerary.Destination)

	tasks := flattenWorklist(itinerary)
	pins, err := g.resolvePins(ctx, tasks)
	if err != nil {
		return nil, err
	}

	log.Printf("geocode: resolved %d of %d locations for %q", len(pins), len(tasks), itinerary.Destination)

	view := &response_models.MapView{
		Center:    center,
		Pins:      pins,
		Requested: len(tasks),
		Resolved:  len(pins),
		Viewport:  selectViewport(pins, center, centerOK),
	}
	return view, nil
}

func (g *GeocodeService) resolveCenter(ctx context.Context, destination string) (response_models.LatLng, bool) {
	pos, found, err := g.geocoder.Resolve(ctx, destination)
	if err != nil || !found {
		if err != nil {
			log.Printf("geocode: destination %q center lookup failed: %v", destination, err)
		} else {
			log.Printf("geocode: destination %q not found, using fallback center", destination)
		}
		return fallbackCenter, false
	}
	return pos, true
}

func flattenWorklist(itinerary *response_models.Itinerary) []geocodeTask {
	var tasks []geocodeTask
	for _, day := range itinerary.DailyItinerary {
		items := append(append([]response_models.PlaceItem{}, day.Activities...), day.Restaurants...)
		for _, item := range items {
			query := item.GeocodeQuery()
			if query == "" {
				continue
			}
			tasks = append(tasks, geocodeTask{
				key:         item.Name,
				query:       query,
				label:       item.Name,
				description: item.Description,
				day:         day.Day,
			})
		}
	}
	return tasks
}

// resolvePins fans the worklist out over a small worker pool. Each task's
// outcome is independent; unresolved entries are dropped, never guessed.
// Worklist order is preserved in the result.
func (g *GeocodeService) resolvePins(ctx context.Context, tasks []geocodeTask) ([]response_models.Pin, error) {
	results := make([]*response_models.Pin, len(tasks))
	indexes := make(chan int)
	credentialErr := make(chan error, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < g.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				task := tasks[i]
				pos, found, err := g.geocoder.Resolve(ctx, task.query)
				if err != nil {
					if errors.Is(err, utils.ErrMapsCredentialMissing) {
						credentialErr <- err
						continue
					}
					log.Printf("geocode: lookup for %q failed: %v", task.query, err)
					continue
				}
				if !found {
					log.Printf("geocode: no result for %q (searched %q)", task.label, task.query)
					continue
				}
				results[i] = &response_models.Pin{
					Key:         task.key,
					Position:    pos,
					Label:       task.label,
					Description: task.description,
					Day:         task.day,
				}
			}
		}()
	}

	for i := range tasks {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	close(credentialErr)

	if err, ok := <-credentialErr; ok {
		return nil, err
	}

	pins := make([]response_models.Pin, 0, len(tasks))
	for _, p := range results {
		if p != nil {
			pins = append(pins, *p)
		}
	}
	return pins, nil
}

// selectViewport: no pins falls back to the destination center (or the
// hardcoded default); one pin centers on it; two or more fit a bounding box.
func selectViewport(pins []response_models.Pin, center response_models.LatLng, centerOK bool) response_models.Viewport {
	switch len(pins) {
	case 0:
		zoom := defaultZoom
		if !centerOK {
			zoom = fallbackZoom
		}
		return response_models.Viewport{Center: center, Zoom: zoom}
	case 1:
		return response_models.Viewport{Center: pins[0].Position, Zoom: singlePinZoom}
	default:
		bounds := boundsOf(pins)
		return response_models.Viewport{
			Center: response_models.LatLng{
				Lat: (bounds.SouthWest.Lat + bounds.NorthEast.Lat) / 2,
				Lng: (bounds.SouthWest.Lng + bounds.NorthEast.Lng) / 2,
			},
			Zoom:    defaultZoom,
			Bounds:  &bounds,
			Padding: boundingPadding,
		}
	}
}

func boundsOf(pins []response_models.Pin) response_models.LatLngBounds {
	b := response_models.LatLngBounds{
		SouthWest: pins[0].Position,
		NorthEast: pins[0].Position,
	}
	for _, pin := range pins[1:] {
		if pin.Position.Lat < b.SouthWest.Lat {
			b.SouthWest.Lat = pin.Position.Lat
		}
		if pin.Position.Lng < b.SouthWest.Lng {
			b.SouthWest.Lng = pin.Position.Lng
		}
		if pin.Position.Lat > b.NorthEast.Lat {
			b.NorthEast.Lat = pin.Position.Lat
		}
		if pin.Position.Lng > b.NorthEast.Lng {
			b.NorthEast.Lng = pin.Position.Lng
		}
	}
	return b
}
