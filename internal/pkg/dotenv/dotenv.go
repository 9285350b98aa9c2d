package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает файл окружения, переменные процесса не перезаписываются.
// Отсутствующий файл не ошибка, loaded=false. Флаги -port и -grpc-port
// перекрывают PORT и GRPC_PORT.
func Load(path string, args []string) (bool, error) {
	loaded := true
	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = false
	}

	flags := flag.NewFlagSet("shipment-service", flag.ContinueOnError)
	port := flags.String("port", "", "HTTP port (overrides PORT)")
	grpcPort := flags.String("grpc-port", "", "gRPC health port (overrides GRPC_PORT)")
	if err := flags.Parse(args); err != nil {
		return loaded, fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{"PORT": *port, "GRPC_PORT": *grpcPort}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return loaded, fmt.Errorf("set %s: %w", key, err)
		}
	}
	return loaded, nil
}
