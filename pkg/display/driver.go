package display

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strconv"

	"github.com/thelolagemann/beef/pkg/log"
)

// ErrClosed is returned by Driver.Present once the surface has
// been closed, e.g. the user closed the window.
var ErrClosed = errors.New("display: surface closed")

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	// Start creates the presentation surface. An error here means
	// the surface can't be used at all.
	Start(title string, width, height int) error
	// Present hands a frame of width*height packed 0x00RRGGBB
	// colours to the surface. It may block until the frame is shown.
	Present(fb []uint32, width, height int) error
	// Stop the display driver.
	Stop() error
}

// Looper is implemented by drivers that need to own the main
// goroutine. Loop calls run on another goroutine and blocks until
// the driver exits.
type Looper interface {
	Loop(run func() error) error
}

// LoggerSetter is implemented by drivers that report errors they
// can't return, e.g. from menu actions.
type LoggerSetter interface {
	SetLogger(l log.Logger)
}

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "int", "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. Drivers
// should call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, or nil if
// no driver with that name is installed. "auto" returns the first
// installed driver.
func GetDriver(name string) Driver {
	if name == "auto" {
		if len(InstalledDrivers) == 0 {
			return nil
		}
		return InstalledDrivers[0].Driver
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// Names returns the names of all installed drivers, in the order
// they were installed.
func Names() []string {
	names := make([]string, 0, len(InstalledDrivers))
	for _, driver := range InstalledDrivers {
		names = append(names, driver.Name)
	}
	return names
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
}

// RegisterFlags iterates through all the display driver options
// and registers them with fs. Options shared by several drivers
// are merged into one flag, the rest are prefixed with the driver
// name.
func RegisterFlags(fs *flag.FlagSet) {
	optionCounts := make(map[string]int)
	opts := make(map[string][]DriverOption)
	prefixes := make(map[string][]string)

	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			// track how many times an option is used
			optionCounts[opt.Name]++
			opts[opt.Name] = append(opts[opt.Name], opt)
			prefixes[opt.Name] = append(prefixes[opt.Name], driver.Name)
		}
	}

	names := make([]string, 0, len(optionCounts))
	for name := range optionCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, o := range names {
		if optionCounts[o] > 1 {
			// this requires an option merge, the first option
			// provides the default and description
			opt := opts[o][0]
			multi := &multiValue{defaultValue: opt.Default}
			for _, mOpt := range opts[o] {
				multi.values = append(multi.values, mOpt.Value)
				setDefault(mOpt.Value, opt.Default)
			}
			fs.Var(multi, o, opt.Description)
			continue
		}

		// this option is unique and should be prefixed
		opt := opts[o][0]
		optName := fmt.Sprintf("%s-%s", prefixes[o][0], opt.Name)
		switch opt.Type {
		case "string":
			fs.StringVar(opt.Value.(*string), optName, opt.Default.(string), opt.Description)
		case "bool":
			fs.BoolVar(opt.Value.(*bool), optName, opt.Default.(bool), opt.Description)
		case "float":
			fs.Float64Var(opt.Value.(*float64), optName, opt.Default.(float64), opt.Description)
		case "int":
			fs.IntVar(opt.Value.(*int), optName, opt.Default.(int), opt.Description)
		}
	}
}

func setDefault(ptr, value any) {
	switch p := ptr.(type) {
	case *string:
		*p = value.(string)
	case *bool:
		*p = value.(bool)
	case *float64:
		*p = value.(float64)
	case *int:
		*p = value.(int)
	}
}

type multiValue struct {
	values       []any
	defaultValue any
}

func (m *multiValue) String() string {
	if m == nil {
		return ""
	}
	switch v := m.defaultValue.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func (m *multiValue) Set(value string) error {
	// update all the pointers with the provided value
	for _, ptr := range m.values {
		switch p := ptr.(type) {
		case *string:
			*p = value
		case *bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			*p = b
		case *float64:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			*p = f
		case *int:
			i, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			*p = i
		default:
			return fmt.Errorf("display: unknown option type %T", ptr)
		}
	}

	return nil
}

func (m *multiValue) IsBoolFlag() bool {
	_, isBool := m.defaultValue.(bool)
	return isBool
}
