/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/opepen-graveyard/goapi/base/env"
	"github.com/opepen-graveyard/goapi/base/log"
)

const (
	// DdPort is the dogstatsd agent port
	DdPort = 8125
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	cli      statsCli
)

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// initClient talks to the datadog agent when datadog_host is set, otherwise metrics go to debug logs
func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		cli = &LogClient{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, DdPort)
	c, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, logging metrics instead")
		cli = &LogClient{}
		return
	}
	log.Log().WithField("addr", addr).Info("connected to datadog agent")
	cli = c
}

// Ender ends a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	// BumpTime starts a timer, use it as
	//
	//     defer s.BumpTime("my.function").End()
	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with pkgName as key prefix
func New(pkgName string) Service {
	initOnce.Do(initClient)
	return &Metrics{
		pkgName: pkgName,
		ddTags: []string{
			"host:", // remove unused host tag
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type Metrics struct {
	pkgName string
	ddTags  []string
}

func (mt *Metrics) tags(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Error("tag length needs to be multiple of 2")
		tags = tags[:len(tags)-1]
	}
	res := append([]string{}, mt.ddTags...)
	for i := 0; i < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if err := cli.Count(mt.key(key), int64(val), mt.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpSum"}).Error("Bump fail")
	}
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := cli.Histogram(mt.key(key), val, mt.tags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  mt.tags(tags),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	ms := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := cli.TimeInMilliseconds(t.key, ms, t.tags, 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "tags": strings.Join(t.tags, ","), "func": "BumpTime"}).Error("Bump fail")
	}
}

// LogClient writes metrics to the debug log
type LogClient struct{}

func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric count")
	return nil
}

func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric histogram")
	return nil
}

func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "time_ms": value, "tags": tags}).Debug("metric time")
	return nil
}
