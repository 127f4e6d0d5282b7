// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The edges package contains tools and functions for finding the edges in
raster images, using simple gradient filters. It can be used interactively,
with the edgeview tool, one image at a time from the command line with the
edges tool, or on a whole directory of images, stored locally or on S3, with
the edgepipeline tool.

All of the tools provided in the edges package will give information on what
they do and how they work with the '-h' flag, so for example to get usage
information on the edges tool simply run the following:

	edges -h

# Operations

The pixel operations themselves live in the rescribe.xyz/edges/edge package.
Each one reads a whole image and creates a whole new image; nothing is
changed in place. The operations are:

	grayscale   the red channel of each pixel, as a gray image
	sobel       gradient magnitude with the Sobel kernels
	prewitt     gradient magnitude with the Prewitt kernels
	threshold   the sobel result set to white at 128 or above, black below
	            (this is also available as 'canny', though it is a much
	            simpler thing than a real Canny detector)
	combined    a quarter each of sobel and prewitt, plus half of threshold

The outermost one pixel border of every gradient result is always black, as
the 3x3 kernels are only applied where they fit entirely inside the image.

# Interactive use

The edgeview tool opens a window with a button for each operation. Open an
image with the 'Open' button, and each operation will then be applied to
whatever is currently shown, so for example pressing 'Grayscale' and then
'Sobel' shows the Sobel gradient of the grayscale image. 'Reset' returns to
the image as it was loaded, and 'Save' writes the current image as a PNG.

	edgeview [image]

# Single images

The edges tool applies a comma separated list of operations, in order, to
an image, and saves the result as a PNG. It can also save a graph of the
intensities in the result, which is useful for choosing a threshold.

	edges -graph hist.png grayscale,combined in.jpg out.png

# Batches

The edgepipeline tool uploads a directory of images to storage, filters each
of them in turn, and downloads the results, optionally creating a PDF
contact sheet of the results. By default storage is a temporary directory
on the local machine; with '-c aws' an S3 bucket is used instead, in
which case ~/.aws/credentials needs to be set up appropriately.

	edgepipeline -ops sobel,threshold -pdf sheet.pdf photos/ results/

Once the results are downloaded the set is removed from storage, unless
'-keep' is given. The lssets tool lists the sets kept in storage, and
rmset removes them.

	lssets
	rmset photos

Bucket and region defaults are defined in cloudsettings.go.
*/
package edges
