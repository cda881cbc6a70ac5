package notifier

import (
	"net/http"
	"time"

	"seyren-stride/test/mocks"
	"github.com/golang/mock/gomock"
)

// newQuietLogger returns a mock logger accepting any call.
func newQuietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithError(gomock.Any()).Return(log).AnyTimes()
	return log
}

func newTestHTTPClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}
