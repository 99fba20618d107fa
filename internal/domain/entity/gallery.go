package entity

// GroupID identifies a gallery group.
type GroupID string

// Group is a visual grouping of images on the host page.
// Activating any image in a group opens the lightbox over the whole group.
type Group struct {
	ID     GroupID
	Title  string
	Images []Image
}

// Len returns the number of images in the group.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Images)
}
