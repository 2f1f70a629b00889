package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		ServiceName string `json:"service_name"`
		Version     string `json:"version"`
		Environment string `json:"environment"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		MetricsAddress  string   `json:"metrics_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		HealthPath      string   `json:"health_path"`
	} `json:"server,omitempty"`

	Telemetry struct {
		Exporter     string  `json:"exporter"`
		OTLPEndpoint string  `json:"otlp_endpoint"`
		OTLPInsecure bool    `json:"otlp_insecure"`
		SampleRatio  float64 `json:"sample_ratio"`
	} `json:"telemetry,omitempty"`

	Probe struct {
		URL      string   `json:"url"`
		Timeout  Duration `json:"timeout"`
		Attempts int      `json:"attempts"`
		Interval Duration `json:"interval"`
	} `json:"probe,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ServiceName: jsonCfg.App.ServiceName,
			Version:     jsonCfg.App.Version,
			Environment: jsonCfg.App.Environment,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			MetricsAddress:  jsonCfg.Server.MetricsAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			HealthPath:      jsonCfg.Server.HealthPath,
		},
		Telemetry: Telemetry{
			Exporter:     jsonCfg.Telemetry.Exporter,
			OTLPEndpoint: jsonCfg.Telemetry.OTLPEndpoint,
			OTLPInsecure: jsonCfg.Telemetry.OTLPInsecure,
			SampleRatio:  jsonCfg.Telemetry.SampleRatio,
		},
		Probe: Probe{
			URL:      jsonCfg.Probe.URL,
			Timeout:  time.Duration(jsonCfg.Probe.Timeout),
			Attempts: jsonCfg.Probe.Attempts,
			Interval: time.Duration(jsonCfg.Probe.Interval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
