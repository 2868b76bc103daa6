// Package contourgeom turns raw point samples extracted from segmentation
// masks or annotated landmark files into clean geometric primitives for a
// downstream contour-reconstruction pipeline.
//
// Point sets are numeric tables ([][]float64, rows = points, columns =
// coordinates in 2D or 3D). Row order is significant wherever it encodes a
// polyline or contour. Every routine is a pure function over its inputs:
// there is no retained state, so independent calls may run concurrently
// without locking.
//
// The toolkit covers line fitting with residuals (FitLine3D), 2D polyline
// normals (LineNormals2D), outlier and gap detection on ordered contours
// (DetectInsertionGap, RemoveFarPoints), nearest-point matching between
// point sets (NearestAmong, ClosestPair), set-style row intersection
// (SharedRows), temporal resampling of sparse landmark tracks
// (InterpolateTrack, CompileValvePoints), and planar polygon area estimation
// for near-planar 3D clouds (PlanarArea).
package contourgeom
