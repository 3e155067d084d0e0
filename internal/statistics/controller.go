package statistics

import (
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	subsystemSensor = "sensor"
	subsystemFan    = "fan"
)

type ControllerCollector struct {
	controller controller.FanController

	temperature    *prometheus.Desc
	avgTemperature *prometheus.Desc
	targetSpeed    *prometheus.Desc
	appliedSpeed   *prometheus.Desc
	speedChanges   *prometheus.Desc
}

func NewControllerCollector(controller controller.FanController) *ControllerCollector {
	return &ControllerCollector{
		controller: controller,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "temperature_celsius"),
			"Last temperature sampled from the EC",
			nil, nil,
		),
		avgTemperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "temperature_celsius_avg"),
			"Rolling average of the sampled temperature",
			nil, nil,
		),
		targetSpeed: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemFan, "target_speed_percent"),
			"Fan speed the controller currently wants",
			nil, nil,
		),
		appliedSpeed: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemFan, "applied_speed_percent"),
			"Fan speed last written to the EC",
			nil, nil,
		),
		speedChanges: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemFan, "speed_changes_total"),
			"Number of committed fan speed changes",
			nil, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
	ch <- collector.avgTemperature
	ch <- collector.targetSpeed
	ch <- collector.appliedSpeed
	ch <- collector.speedChanges
}

// Collect implements the required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	snapshot := collector.controller.Snapshot()
	ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, float64(snapshot.Temperature))
	ch <- prometheus.MustNewConstMetric(collector.avgTemperature, prometheus.GaugeValue, snapshot.AvgTemperature)
	ch <- prometheus.MustNewConstMetric(collector.targetSpeed, prometheus.GaugeValue, float64(snapshot.TargetSpeed))
	ch <- prometheus.MustNewConstMetric(collector.appliedSpeed, prometheus.GaugeValue, float64(snapshot.AppliedSpeed))
	ch <- prometheus.MustNewConstMetric(collector.speedChanges, prometheus.CounterValue, float64(snapshot.SpeedChanges))
}
