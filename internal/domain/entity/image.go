package entity

// Image references one displayable image.
type Image struct {
	URL string // file path or URL, as supplied by the gallery
	Alt string

	// Width and Height are the intrinsic pixel dimensions, zero when unknown.
	Width  int
	Height int
}

// ImageSet is the ordered collection shown by an open lightbox,
// plus the index of the displayed image.
type ImageSet struct {
	images []Image
	index  int
}

// NewImageSet creates a set positioned at startIndex.
// Returns nil if images is empty or startIndex is out of bounds.
func NewImageSet(images []Image, startIndex int) *ImageSet {
	if len(images) == 0 || startIndex < 0 || startIndex >= len(images) {
		return nil
	}
	cp := make([]Image, len(images))
	copy(cp, images)
	return &ImageSet{images: cp, index: startIndex}
}

// Len returns the number of images, zero for a nil set.
func (s *ImageSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.images)
}

// Index returns the current index, -1 for a nil set.
func (s *ImageSet) Index() int {
	if s == nil {
		return -1
	}
	return s.index
}

// Current returns the displayed image.
func (s *ImageSet) Current() (Image, bool) {
	if s.Len() == 0 {
		return Image{}, false
	}
	return s.images[s.index], true
}

// Images returns a copy of the images in order.
func (s *ImageSet) Images() []Image {
	if s == nil {
		return nil
	}
	out := make([]Image, len(s.images))
	copy(out, s.images)
	return out
}

// Next advances the index with wraparound.
// Returns false, leaving the index untouched, when the set has at most one image.
func (s *ImageSet) Next() bool {
	n := s.Len()
	if n <= 1 {
		return false
	}
	s.index = (s.index + 1) % n
	return true
}

// Previous moves the index back with wraparound.
// Returns false, leaving the index untouched, when the set has at most one image.
func (s *ImageSet) Previous() bool {
	n := s.Len()
	if n <= 1 {
		return false
	}
	s.index = (s.index - 1 + n) % n
	return true
}
