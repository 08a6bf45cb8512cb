package webdemo

const (
	projectionPerspective = "perspective"
	projectionOrtho       = "ortho"
)
