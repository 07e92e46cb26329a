// Package scene holds the wireframe world drawn behind the overlay.
//
// Meshes and pick markers are entities in a [Donburi] world. [Scene.Project]
// pushes every mesh edge through the camera's view-projection matrix and
// returns screen-space segments ready for a 2D line renderer. [Scene.Pick]
// turns the coordinator's committed NDC pick point into a point on the
// ground plane and drops a marker there.
//
// [Donburi]: https://github.com/yohamta/donburi
package scene
