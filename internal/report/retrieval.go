package report

import (
	"encoding/xml"
	"fmt"
	"io/ioutil"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/logging"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	timeout                = time.Second * 30
	retryWaitMax           = time.Second * 10
	r            retriever = &defaultRetriever{}
	logger                 = logging.AppLogger().WithFields(log.Fields{"component": "report"})
)

type retriever interface {
	getRawReport(location string) ([]byte, error)
}

type defaultRetriever struct {
}

func (r *defaultRetriever) getRawReport(location string) ([]byte, error) {
	if isURL(location) {
		return r.getRemoteReport(location)
	}
	return r.getLocalReport(location)
}

func (r *defaultRetriever) getRemoteReport(url string) ([]byte, error) {
	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = timeout
	client.RetryMax = 3
	client.RetryWaitMax = retryWaitMax
	if client.RetryWaitMin > retryWaitMax {
		client.RetryWaitMin = retryWaitMax
	}
	w := logging.AppLogger().WriterLevel(log.DebugLevel)
	defer w.Close()
	client.Logger = stdlog.New(w, "", 0)

	response, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode > 299 || response.StatusCode < 200 {
		return nil, errors.New(fmt.Sprintf("Status code: %d, error: %s", response.StatusCode, response.Status))
	}
	return ioutil.ReadAll(response.Body)
}

// getLocalReport reads a report from disk. An empty file is retried, since the tool writing the
// report might not have flushed it yet.
func (r *defaultRetriever) getLocalReport(path string) ([]byte, error) {
	var data []byte
	f := func() error {
		var err error
		data, err = ioutil.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) || os.IsPermission(err) {
				return util.Permanent(err)
			}
			return err
		}
		if len(data) == 0 {
			return errors.Errorf("report %s is empty", path)
		}
		return nil
	}
	if err := util.ApplyWithBackoff(f); err != nil {
		return nil, err
	}
	return data, nil
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// RetrieveReport retrieves a Cobertura report from the specified location which can either be a
// HTTP(S) URL or a local file path.
func RetrieveReport(location string) (*Coverage, error) {
	logger.Debugf("retrieving report '%s'", location)
	rawReport, err := r.getRawReport(location)
	if err != nil {
		return nil, err
	}
	return Decode(rawReport)
}

// Decode unmarshals the raw XML of a Cobertura report.
func Decode(rawReport []byte) (*Coverage, error) {
	report := Coverage{}
	err := xml.Unmarshal(rawReport, &report)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode Cobertura report")
	}
	return &report, nil
}
