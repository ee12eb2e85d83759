//nolint:ireturn
package dic

import (
	"reflect"

	"github.com/pkg/errors"
)

var ErrServiceAlreadyRegistered = errors.New("service already registered")

var services = make(map[string]any) //nolint:gochecknoglobals

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func GetService[T any]() T {
	serviceName := typeName[T]()
	service, exist := services[serviceName]
	if !exist {
		panic(errors.Errorf("service %s does not exist", serviceName))
	}
	return service.(T) //nolint:forcetypeassert
}

// Register keeps the first implementation registered for a type, tests rely on
// this to override services before the container is built.
func Register[T any](implementation T) error {
	name := typeName[T]()
	if _, exist := services[name]; exist {
		return errors.Wrap(ErrServiceAlreadyRegistered, name)
	}
	services[name] = implementation
	return nil
}

func ResetContainer() {
	services = make(map[string]any, len(services))
}
