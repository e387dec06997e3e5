package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"gradient/internal/render"
	"gradient/vec3"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML render config")
	output := flag.String("o", "", "output image path (overrides the config)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	vector1 := vec3.New(1, 2, 3)
	vector2 := vec3.New(0.5, 0.3, 0.2)

	fmt.Printf("Vector 1 value is %v\n", vector1)
	fmt.Printf("Vector 2 value is %v\n", vector2)
	fmt.Printf("Vector addition result is %v\n", vector1.Add(vector2))
	fmt.Printf("Vector substraction result is %v\n", vector1.Sub(vector2))

	cfg := render.Default()
	if *configPath != "" {
		cfg, err = render.Load(*configPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	if *output != "" {
		cfg.Output = *output
	}

	img, err := render.Gradient(cfg)
	if err != nil {
		logger.Fatal("render gradient", zap.Error(err))
	}
	if err := render.WritePNG(cfg.Output, img); err != nil {
		logger.Fatal("write image", zap.Error(err))
	}
	logger.Info("image written",
		zap.String("path", cfg.Output),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))
}
