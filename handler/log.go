package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"querylambda/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}

func logRequest(req *http.Request, id string, status int) {
	log.Infof("%s -- %s -- %s -- %d -- %s", req.RemoteAddr, req.Method, req.URL.Path, status, id)
}

func logAndReturnError(w http.ResponseWriter, req *http.Request, httpResponseStr string, code int, consoleStr ...string) {
	// consoleStr is optional.
	if len(consoleStr) > 0 {
		log.Errorln(consoleStr[0])
	} else {
		log.Errorln(httpResponseStr)
	}
	log.Debugf("%s -- %s -- %s -- %d", req.RemoteAddr, req.Method, req.URL.Path, code)
	http.Error(w, httpResponseStr, code)
}
