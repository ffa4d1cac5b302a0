package parameter

// CameraSlack is the per-axis dead zone half-width in page units
// The camera offset moves only once the body leaves this band
const CameraSlack = 80.0
