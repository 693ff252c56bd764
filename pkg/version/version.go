package version

// Version holds the markfile version. It is set at build time:
//
//	go build -ldflags "-X github.com/soliterra/markfile/pkg/version.Version=1.2.3"
var Version = "0.0.1"
