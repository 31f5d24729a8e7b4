package backend

import (
	"github.com/sirupsen/logrus"
	"querylambda/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
