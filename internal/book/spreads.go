package book

import "errors"

// Spread is one physical page: the image shown on its front and the one on
// its back.
type Spread struct {
	Front string
	Back  string
}

// ErrNoImages is returned when a book is built from an empty image list.
var ErrNoImages = errors.New("book: no images")

// Spreads pairs the ordered image ids into pages. The cover backs the first
// image, interior images pair up two by two, and the last image is backed by
// the back cover. With an even count every image appears once and the book
// has n/2+1 pages; with an odd count the last image closes both the final
// interior pair and the back page.
func Spreads(images []string, cover, back string) ([]Spread, error) {
	n := len(images)
	if n == 0 {
		return nil, ErrNoImages
	}

	spreads := make([]Spread, 0, n/2+2)
	spreads = append(spreads, Spread{Front: cover, Back: images[0]})
	for i := 1; i < n-1; i += 2 {
		spreads = append(spreads, Spread{Front: images[i], Back: images[i+1]})
	}
	spreads = append(spreads, Spread{Front: images[n-1], Back: back})
	return spreads, nil
}
