package internal

// Version is the tossicat release, shown by --version.
const Version = "0.4.0"
