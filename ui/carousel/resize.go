package carousel

// Observed elements of one carousel.
const (
	targetContainer = "container"
	targetSlider    = "slider"
)

// resizeEntry is a size change of one observed element.
type resizeEntry struct {
	Target        string
	Width, Height int
}

type observedSize struct {
	width, height int
	measured      bool
}

// resizeObserver reports size changes of the elements it observes.
// Measurements of unobserved elements and repeated identical sizes produce
// no entries. After disconnect nothing is reported until observe is
// called again.
type resizeObserver struct {
	targets map[string]*observedSize
}

func newResizeObserver() *resizeObserver {
	return &resizeObserver{targets: make(map[string]*observedSize)}
}

func (o *resizeObserver) observe(target string) {
	if _, ok := o.targets[target]; !ok {
		o.targets[target] = &observedSize{}
	}
}

func (o *resizeObserver) observing(target string) bool {
	_, ok := o.targets[target]
	return ok
}

func (o *resizeObserver) disconnect() {
	clear(o.targets)
}

// report records a measurement and returns the entries it produced.
func (o *resizeObserver) report(target string, width, height int) []resizeEntry {
	size, ok := o.targets[target]
	if !ok {
		return nil
	}
	if size.measured && size.width == width && size.height == height {
		return nil
	}
	size.width, size.height, size.measured = width, height, true
	return []resizeEntry{{Target: target, Width: width, Height: height}}
}
