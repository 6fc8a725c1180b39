// Package statsview serves live runtime statistics (heap, GC,
// goroutines) over HTTP.
package statsview

import (
	"fmt"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/thelolagemann/beef/pkg/log"
)

// Path is where the stats page is served.
const Path = "/debug/statsview"

// Launch starts the stats server on addr in a new goroutine and
// returns the URL of the stats page.
func Launch(addr string, logger log.Logger) string {
	url := fmt.Sprintf("http://%s%s", addr, Path)

	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		if err := mgr.Start(); err != nil {
			logger.Errorf("statsview: %v", err)
		}
	}()

	logger.Infof("stats server available at %s", url)
	return url
}
